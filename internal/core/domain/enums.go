package domain

// PaymentMode is how a borrower repays a loan.
type PaymentMode string

const (
	PaymentCash         PaymentMode = "Cash"
	PaymentBankTransfer PaymentMode = "Bank Transfer"
	PaymentCheque       PaymentMode = "Cheque"
	PaymentUPI          PaymentMode = "UPI"
)

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentCash, PaymentBankTransfer, PaymentCheque, PaymentUPI:
		return true
	}
	return false
}

// LoanStatus is the lifecycle state of a loan record.
type LoanStatus string

const (
	LoanActive  LoanStatus = "Active"
	LoanPending LoanStatus = "Pending"
	LoanClosed  LoanStatus = "Closed"
)

func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanActive, LoanPending, LoanClosed:
		return true
	}
	return false
}

// LoanType classifies the credit product. Records written before the field
// existed are read as DefaultLoanType.
type LoanType string

const (
	CashLoan LoanType = "Cash Loan"
	GoldLoan LoanType = "Gold Loan"
	HomeLoan LoanType = "Home Loan"

	DefaultLoanType = CashLoan
)

func (t LoanType) IsValid() bool {
	switch t {
	case CashLoan, GoldLoan, HomeLoan:
		return true
	}
	return false
}

// NoticeStatus tracks whether a legal notice has been settled.
type NoticeStatus string

const (
	NoticePending  NoticeStatus = "Pending"
	NoticeResolved NoticeStatus = "Resolved"
)

func (s NoticeStatus) IsValid() bool {
	return s == NoticePending || s == NoticeResolved
}

// TransactionType is the kind of money movement recorded against a borrower.
type TransactionType string

const (
	TransactionPayment   TransactionType = "Payment"
	TransactionLoanIssue TransactionType = "Loan Issue"
	TransactionInterest  TransactionType = "Interest"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionPayment, TransactionLoanIssue, TransactionInterest:
		return true
	}
	return false
}
