package database

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestResolveCredentialSource(t *testing.T) {
	saFile := writeFile(t, "service-account.json", `{}`)
	envFile := writeFile(t, "gac.json", `{}`)
	missing := filepath.Join(t.TempDir(), "missing.json")

	tests := []struct {
		name string
		opts FirestoreOptions
		want credentialKind
	}{
		{"service account file wins", FirestoreOptions{ServiceAccountFile: saFile, CredentialsFile: envFile, CredentialsJSON: `{}`}, credentialsServiceAccountFile},
		{"env file when service account file missing", FirestoreOptions{ServiceAccountFile: missing, CredentialsFile: envFile}, credentialsEnvFile},
		{"inline json", FirestoreOptions{ServiceAccountFile: missing, CredentialsFile: missing, CredentialsJSON: `{"type":"service_account"}`}, credentialsInlineJSON},
		{"application default", FirestoreOptions{}, credentialsApplicationDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveCredentialSource(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCredentialSource_InvalidJSON(t *testing.T) {
	_, err := resolveCredentialSource(FirestoreOptions{CredentialsJSON: "{not json"})
	assert.ErrorIs(t, err, ErrInvalidCredentialsJSON)
}

func TestResolveCredentialSource_DirectoryIsNotAFile(t *testing.T) {
	got, err := resolveCredentialSource(FirestoreOptions{ServiceAccountFile: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, credentialsApplicationDefault, got)
}

func TestNewFirestoreClient_RequiresProject(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := NewFirestoreClient(context.Background(), FirestoreOptions{}, logger)
	assert.Error(t, err)
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "", false)
	assert.Error(t, err)
}

func TestNewPgxPool_BadURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "postgres://%zz", false)
	assert.Error(t, err)
}
