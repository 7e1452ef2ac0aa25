package docstore

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/savkar_ledger/internal/apperrors"
	"github.com/SscSPs/savkar_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/savkar_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/savkar_ledger/internal/repositories/database/memory"
	"github.com/stretchr/testify/suite"
)

const testAccount = "savkar_user_001"

var fixedNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	repos portsrepo.RepositoryProvider
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.repos = NewRepositoryProvider(suite.store, func() time.Time { return fixedNow })
}

func loanFields() domain.Fields {
	return domain.Fields{
		"borrowerName": "Ramesh Patil",
		"phoneNumber":  "9876543210",
		"emi":          5000.0,
		"startDate":    "2024-01-01",
		"endDate":      "2024-12-31",
		"interestRate": 2.0,
		"paymentMode":  "Cash",
		"totalLoan":    100000.0,
		"paidAmount":   20000.0,
		"status":       "Active",
	}
}

func (suite *RepositoryTestSuite) storedLoan(id string) map[string]any {
	snap, err := suite.store.Get(suite.ctx, accountCollection(testAccount, loansCollection), id)
	suite.Require().NoError(err)
	return snap.Data
}

func (suite *RepositoryTestSuite) TestEnsureAccount_CreatesOnFirstTouch() {
	acct, err := suite.repos.AccountRepo.EnsureAccount(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Equal(testAccount, acct.ID)
	suite.True(fixedNow.Equal(acct.CreatedAt))

	snap, err := suite.store.Get(suite.ctx, usersCollection, testAccount)
	suite.Require().NoError(err)
	suite.Equal(testAccount, snap.Data["uid"])

	again, err := suite.repos.AccountRepo.EnsureAccount(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.True(fixedNow.Equal(again.CreatedAt))
}

func (suite *RepositoryTestSuite) TestEnsureAccount_RejectsPathLikeIDs() {
	_, err := suite.repos.AccountRepo.EnsureAccount(suite.ctx, "")
	suite.ErrorIs(err, apperrors.ErrMissingIdentity)

	for _, id := range []string{"victim/loans/x", "a/b", "..", "__meta__"} {
		_, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, id, loanFields())
		suite.ErrorIs(err, apperrors.ErrInvalidIdentity, id)
	}

	accounts, err := suite.store.List(suite.ctx, usersCollection)
	suite.Require().NoError(err)
	suite.Empty(accounts)
	victim, err := suite.store.List(suite.ctx, accountCollection("victim", loansCollection))
	suite.Require().NoError(err)
	suite.Empty(victim)
}

func (suite *RepositoryTestSuite) TestCreateLoan_DefaultsLoanTypeAndStamps() {
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, loanFields())
	suite.Require().NoError(err)

	suite.NotEmpty(loan.ID)
	suite.Equal(domain.CashLoan, loan.LoanType)
	suite.Equal("Ramesh Patil", loan.BorrowerName)
	suite.True(fixedNow.Equal(loan.CreatedAt))
	suite.True(fixedNow.Equal(loan.UpdatedAt))

	stored := suite.storedLoan(loan.ID)
	suite.Equal("Cash Loan", stored["loan_type"])
	suite.Equal("9876543210", stored["phone_number"])
	suite.IsType(time.Time{}, stored["created_at"])
	suite.NotContains(stored, "id")
	suite.NotContains(stored, "borrowerName")
}

func (suite *RepositoryTestSuite) TestCreateLoan_KeepsSuppliedLoanType() {
	fields := loanFields()
	fields["loanType"] = "Gold Loan"
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, fields)
	suite.Require().NoError(err)
	suite.Equal(domain.GoldLoan, loan.LoanType)
}

func (suite *RepositoryTestSuite) TestListLoans_LegacyRecordReadsDefaultWithoutPersisting() {
	coll := accountCollection(testAccount, loansCollection)
	legacy := map[string]any{
		"borrower_name": "Old Record",
		"phone_number":  "111",
		"emi":           int64(100),
		"start_date":    "2020-01-01",
		"end_date":      "2021-01-01",
		"interest_rate": 1.5,
		"payment_mode":  "UPI",
		"total_loan":    int64(1000),
		"paid_amount":   int64(1000),
		"status":        "Closed",
		"last_amount":   250.0,
		"created_at":    "2020-01-01T10:00:00",
	}
	suite.Require().NoError(suite.store.Set(suite.ctx, coll, "legacy-1", legacy))

	loans, err := suite.repos.LoanRepo.ListLoans(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Require().Len(loans, 1)
	suite.Equal("legacy-1", loans[0].ID)
	suite.Equal(domain.CashLoan, loans[0].LoanType)
	suite.Require().NotNil(loans[0].LastAmount)
	suite.Equal(250.0, *loans[0].LastAmount)
	suite.True(time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC).Equal(loans[0].CreatedAt))

	suite.NotContains(suite.storedLoan("legacy-1"), "loan_type")
}

func (suite *RepositoryTestSuite) TestUpdateLoan_PreservesLoanType() {
	fields := loanFields()
	fields["loanType"] = "Gold Loan"
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, fields)
	suite.Require().NoError(err)

	later := fixedNow.Add(time.Hour)
	repos := NewRepositoryProvider(suite.store, func() time.Time { return later })
	updated, err := repos.LoanRepo.UpdateLoan(suite.ctx, testAccount, loan.ID, domain.Fields{"paidAmount": 50000.0})
	suite.Require().NoError(err)

	suite.Equal(domain.GoldLoan, updated.LoanType)
	suite.Equal(50000.0, updated.PaidAmount)
	suite.Equal("Ramesh Patil", updated.BorrowerName)
	suite.True(later.Equal(updated.UpdatedAt))
	suite.True(fixedNow.Equal(updated.CreatedAt))
}

func (suite *RepositoryTestSuite) TestUpdateLoan_ExplicitLoanTypeOverwrites() {
	fields := loanFields()
	fields["loanType"] = "Gold Loan"
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, fields)
	suite.Require().NoError(err)

	updated, err := suite.repos.LoanRepo.UpdateLoan(suite.ctx, testAccount, loan.ID, domain.Fields{"loanType": "Home Loan"})
	suite.Require().NoError(err)
	suite.Equal(domain.HomeLoan, updated.LoanType)
	suite.Equal("Home Loan", suite.storedLoan(loan.ID)["loan_type"])

	found, err := suite.repos.LoanRepo.FindLoanByID(suite.ctx, testAccount, loan.ID)
	suite.Require().NoError(err)
	suite.Equal(domain.HomeLoan, found.LoanType)
}

func (suite *RepositoryTestSuite) TestUpdateLoan_NotFound() {
	_, err := suite.repos.LoanRepo.UpdateLoan(suite.ctx, testAccount, "missing", domain.Fields{"paidAmount": 1.0})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.LoanRepo.UpdateLoan(suite.ctx, testAccount, "missing", domain.Fields{"loanType": "Home Loan"})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestFindLoanByID() {
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, loanFields())
	suite.Require().NoError(err)

	found, err := suite.repos.LoanRepo.FindLoanByID(suite.ctx, testAccount, loan.ID)
	suite.Require().NoError(err)
	suite.Equal(loan.ID, found.ID)

	_, err = suite.repos.LoanRepo.FindLoanByID(suite.ctx, testAccount, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoryTestSuite) TestDeleteLoan_Idempotent() {
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, loanFields())
	suite.Require().NoError(err)

	suite.NoError(suite.repos.LoanRepo.DeleteLoan(suite.ctx, testAccount, loan.ID))
	suite.NoError(suite.repos.LoanRepo.DeleteLoan(suite.ctx, testAccount, loan.ID))

	loans, err := suite.repos.LoanRepo.ListLoans(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Empty(loans)
}

func (suite *RepositoryTestSuite) TestListLoans_SkipsInvalidStoredRecord() {
	good, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, loanFields())
	suite.Require().NoError(err)

	coll := accountCollection(testAccount, loansCollection)
	bad := map[string]any{"borrower_name": "X", "phone_number": "1", "start_date": "a", "end_date": "b",
		"payment_mode": "Barter", "status": "Active"}
	suite.Require().NoError(suite.store.Set(suite.ctx, coll, "bad", bad))

	loans, err := suite.repos.LoanRepo.ListLoans(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Require().Len(loans, 1)
	suite.Equal(good.ID, loans[0].ID)

	_, err = suite.repos.LoanRepo.FindLoanByID(suite.ctx, testAccount, "bad")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var verr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &verr))
	suite.Equal("paymentMode", verr.Field)
}

func (suite *RepositoryTestSuite) TestGuarantorIDsNormalized() {
	fields := loanFields()
	fields["guarantors"] = []any{
		map[string]any{"id": 1.0, "name": "Suresh", "residenceAddress": "Nashik",
			"permanentAddress": "Nashik", "mobileNumber": "999"},
	}
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, fields)
	suite.Require().NoError(err)
	suite.Require().Len(loan.Guarantors, 1)
	suite.Equal(domain.FlexString("1"), loan.Guarantors[0].ID)

	stored := suite.storedLoan(loan.ID)
	g := stored["guarantors"].([]any)[0].(map[string]any)
	suite.Equal("1", g["id"])
	suite.Equal("Nashik", g["residence_address"])
}

func (suite *RepositoryTestSuite) TestCreateDocument_FileReferenceAndBackfill() {
	loan, err := suite.repos.LoanRepo.CreateLoan(suite.ctx, testAccount, loanFields())
	suite.Require().NoError(err)

	doc, err := suite.repos.DocumentRepo.CreateDocument(suite.ctx, testAccount, domain.Fields{
		"loanId":      loan.ID,
		"name":        "Aadhar",
		"type":        "ID Proof",
		"fileName":    "aadhar.pdf",
		"fileContent": strings.Repeat("A", 2048+1000),
	})
	suite.Require().NoError(err)

	suite.Require().NotNil(doc.FileID)
	suite.NotEmpty(*doc.FileID)
	suite.Require().NotNil(doc.FileSize)
	suite.EqualValues(2, *doc.FileSize)
	suite.Require().NotNil(doc.BorrowerName)
	suite.Equal("Ramesh Patil", *doc.BorrowerName)
	suite.True(fixedNow.Equal(doc.UploadedAt))

	snap, err := suite.store.Get(suite.ctx, accountCollection(testAccount, documentsCollection), doc.ID)
	suite.Require().NoError(err)
	suite.NotContains(snap.Data, "file_content")
	suite.Equal(loan.ID, snap.Data["loan_id"])
}

func (suite *RepositoryTestSuite) TestCreateDocument_MissingLoanStillCreates() {
	doc, err := suite.repos.DocumentRepo.CreateDocument(suite.ctx, testAccount, domain.Fields{
		"loanId": "no-such-loan",
		"name":   "PAN",
		"type":   "ID Proof",
	})
	suite.Require().NoError(err)
	suite.Nil(doc.BorrowerName)
	suite.Nil(doc.FileID)
	suite.Nil(doc.FileSize)
}

func (suite *RepositoryTestSuite) TestListDocumentsByLoan() {
	for _, loanID := range []string{"L1", "L2", "L1"} {
		_, err := suite.repos.DocumentRepo.CreateDocument(suite.ctx, testAccount, domain.Fields{
			"loanId": loanID, "name": "doc", "type": "Collateral", "borrowerName": "B",
		})
		suite.Require().NoError(err)
	}

	l1, err := suite.repos.DocumentRepo.ListDocumentsByLoan(suite.ctx, testAccount, "L1")
	suite.Require().NoError(err)
	suite.Len(l1, 2)

	all, err := suite.repos.DocumentRepo.ListDocuments(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Len(all, 3)

	suite.NoError(suite.repos.DocumentRepo.DeleteDocument(suite.ctx, testAccount, all[0].ID))
	suite.NoError(suite.repos.DocumentRepo.DeleteDocument(suite.ctx, testAccount, all[0].ID))
}

func (suite *RepositoryTestSuite) TestNoticeLifecycle() {
	notice, err := suite.repos.NoticeRepo.CreateNotice(suite.ctx, testAccount, domain.Fields{
		"borrowerId":   "L1",
		"borrowerName": "Ramesh Patil",
		"amountDue":    15000.0,
		"noticeDate":   "2024-03-01",
		"status":       "Pending",
		"description":  "First notice",
	})
	suite.Require().NoError(err)
	suite.Equal(domain.NoticePending, notice.Status)
	suite.Require().NotNil(notice.UpdatedAt)

	later := fixedNow.Add(24 * time.Hour)
	repos := NewRepositoryProvider(suite.store, func() time.Time { return later })
	updated, err := repos.NoticeRepo.UpdateNotice(suite.ctx, testAccount, notice.ID, domain.Fields{"status": "Resolved"})
	suite.Require().NoError(err)
	suite.Equal(domain.NoticeResolved, updated.Status)
	suite.Equal("First notice", updated.Description)
	suite.Require().NotNil(updated.UpdatedAt)
	suite.True(later.Equal(*updated.UpdatedAt))

	_, err = repos.NoticeRepo.UpdateNotice(suite.ctx, testAccount, "missing", domain.Fields{"status": "Resolved"})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.NoError(repos.NoticeRepo.DeleteNotice(suite.ctx, testAccount, notice.ID))
	suite.NoError(repos.NoticeRepo.DeleteNotice(suite.ctx, testAccount, notice.ID))
	suite.NoError(repos.NoticeRepo.DeleteNotice(suite.ctx, testAccount, "missing"))
	notices, err := repos.NoticeRepo.ListNotices(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Empty(notices)
}

func (suite *RepositoryTestSuite) TestListNotices_SkipsInvalidStoredRecord() {
	coll := accountCollection(testAccount, noticesCollection)
	suite.Require().NoError(suite.store.Set(suite.ctx, coll, "bad", map[string]any{"status": "Escalated"}))
	_, err := suite.repos.NoticeRepo.CreateNotice(suite.ctx, testAccount, domain.Fields{
		"borrowerId": "L1", "borrowerName": "B", "amountDue": 10.0,
		"noticeDate": "2024-03-01", "status": "Pending", "description": "d",
	})
	suite.Require().NoError(err)

	notices, err := suite.repos.NoticeRepo.ListNotices(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Require().Len(notices, 1)
	suite.NotEqual("bad", notices[0].ID)
}

func (suite *RepositoryTestSuite) TestTransactions() {
	txn, err := suite.repos.TransactionRepo.CreateTransaction(suite.ctx, testAccount, domain.Fields{
		"borrowerId":   "L1",
		"borrowerName": "Ramesh Patil",
		"amount":       5000.0,
		"type":         "Payment",
		"date":         "2024-03-05",
		"description":  "March EMI",
	})
	suite.Require().NoError(err)
	suite.Equal(domain.TransactionPayment, txn.Type)
	suite.Require().NotNil(txn.CreatedAt)

	txns, err := suite.repos.TransactionRepo.ListTransactions(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal(txn.ID, txns[0].ID)
}

func (suite *RepositoryTestSuite) TestProfileLookupByNumericLoanID() {
	_, err := suite.repos.ProfileRepo.CreateProfile(suite.ctx, testAccount, domain.Fields{
		"loanId":     42.0,
		"occupation": "Farmer",
		"address":    "Satara",
		"guarantors": []any{},
		"paymentRecords": []any{
			map[string]any{"id": 1700000000000.0, "date": "2024-01-05", "amount": 5000.0, "status": "Paid", "UPIRef": "AXIS123"},
		},
	})
	suite.Require().NoError(err)

	profile, err := suite.repos.ProfileRepo.FindProfileByLoan(suite.ctx, testAccount, "42")
	suite.Require().NoError(err)
	suite.Equal(domain.FlexString("42"), profile.LoanID)
	suite.Equal("Farmer", profile.Occupation)
	suite.Require().Len(profile.PaymentRecords, 1)
	suite.Equal(5000.0, profile.PaymentRecords[0]["amount"])
	suite.Equal("AXIS123", profile.PaymentRecords[0]["UPIRef"])
	suite.NotContains(profile.PaymentRecords[0], "uPIRef")

	_, err = suite.repos.ProfileRepo.FindProfileByLoan(suite.ctx, testAccount, "43")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	updated, err := suite.repos.ProfileRepo.UpdateProfile(suite.ctx, testAccount, profile.ID, domain.Fields{"occupation": "Trader"})
	suite.Require().NoError(err)
	suite.Equal("Trader", updated.Occupation)
	suite.Equal(domain.FlexString("42"), updated.LoanID)

	suite.NoError(suite.repos.ProfileRepo.DeleteProfile(suite.ctx, testAccount, profile.ID))
	profiles, err := suite.repos.ProfileRepo.ListProfiles(suite.ctx, testAccount)
	suite.Require().NoError(err)
	suite.Empty(profiles)
}

// failingStore reports every read as an outage.
type failingStore struct {
	*memory.Store
}

func (failingStore) Get(context.Context, string, string) (*portsrepo.Snapshot, error) {
	return nil, errors.New("connection refused")
}

func (suite *RepositoryTestSuite) TestStoreUnavailable() {
	repos := NewRepositoryProvider(failingStore{memory.NewStore()}, nil)

	_, err := repos.LoanRepo.ListLoans(suite.ctx, testAccount)
	suite.ErrorIs(err, apperrors.ErrStoreUnavailable)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestRepositories(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
