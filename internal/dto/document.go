package dto

// CreateDocumentRequest defines the structure for attaching a document to a loan.
// FileContent is consumed at creation and never stored or returned.
type CreateDocumentRequest struct {
	LoanID       string  `json:"loanId" binding:"required"`
	Name         string  `json:"name" binding:"required" example:"Aadhar Card"`
	Type         string  `json:"type" binding:"required" example:"ID Proof"`
	FileName     *string `json:"fileName,omitempty"`
	FileContent  *string `json:"fileContent,omitempty"`
	BorrowerName *string `json:"borrowerName,omitempty"`
}
