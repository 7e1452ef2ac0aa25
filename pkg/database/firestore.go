package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const datastoreScope = "https://www.googleapis.com/auth/datastore"

// FirestoreOptions carries the credential candidates for NewFirestoreClient.
type FirestoreOptions struct {
	ProjectID string
	// ServiceAccountFile is used when the file exists.
	ServiceAccountFile string
	// CredentialsFile is the GOOGLE_APPLICATION_CREDENTIALS path, used when the file exists.
	CredentialsFile string
	// CredentialsJSON is an inline service account key.
	CredentialsJSON string
}

type credentialKind int

const (
	credentialsServiceAccountFile credentialKind = iota
	credentialsEnvFile
	credentialsInlineJSON
	credentialsApplicationDefault
)

func (k credentialKind) String() string {
	switch k {
	case credentialsServiceAccountFile:
		return "service account file"
	case credentialsEnvFile:
		return "GOOGLE_APPLICATION_CREDENTIALS"
	case credentialsInlineJSON:
		return "FIREBASE_SERVICE_ACCOUNT_JSON"
	default:
		return "application default credentials"
	}
}

// ErrInvalidCredentialsJSON is returned when the inline service account key is not JSON.
var ErrInvalidCredentialsJSON = errors.New("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON")

// resolveCredentialSource picks the first usable credential in order:
// service account file, GOOGLE_APPLICATION_CREDENTIALS, inline JSON, ADC.
func resolveCredentialSource(opts FirestoreOptions) (credentialKind, error) {
	if fileExists(opts.ServiceAccountFile) {
		return credentialsServiceAccountFile, nil
	}
	if fileExists(opts.CredentialsFile) {
		return credentialsEnvFile, nil
	}
	if opts.CredentialsJSON != "" {
		if !json.Valid([]byte(opts.CredentialsJSON)) {
			return 0, ErrInvalidCredentialsJSON
		}
		return credentialsInlineJSON, nil
	}
	return credentialsApplicationDefault, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func clientOptions(ctx context.Context, kind credentialKind, opts FirestoreOptions) ([]option.ClientOption, error) {
	switch kind {
	case credentialsServiceAccountFile:
		return []option.ClientOption{option.WithCredentialsFile(opts.ServiceAccountFile)}, nil
	case credentialsEnvFile:
		return []option.ClientOption{option.WithCredentialsFile(opts.CredentialsFile)}, nil
	case credentialsInlineJSON:
		return []option.ClientOption{option.WithCredentialsJSON([]byte(opts.CredentialsJSON))}, nil
	default:
		creds, err := google.FindDefaultCredentials(ctx, datastoreScope)
		if err != nil {
			return nil, fmt.Errorf("failed to find application default credentials: %w", err)
		}
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	}
}

// NewFirestoreClient initializes a Firestore client for the configured project.
func NewFirestoreClient(ctx context.Context, opts FirestoreOptions, logger *slog.Logger) (*firestore.Client, error) {
	if opts.ProjectID == "" {
		return nil, fmt.Errorf("firestore project id cannot be empty")
	}

	kind, err := resolveCredentialSource(opts)
	if err != nil {
		return nil, err
	}
	clientOpts, err := clientOptions(ctx, kind, opts)
	if err != nil {
		return nil, err
	}

	logger.Info("Initializing Firestore client",
		slog.String("project_id", opts.ProjectID),
		slog.String("credentials", kind.String()))

	client, err := firestore.NewClient(ctx, opts.ProjectID, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
