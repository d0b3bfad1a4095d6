package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/m-tracker/backend/internal/models"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2025-01-10T18:43:00.271152Z"` // Date of the transaction. Defaults to the creation time

	// The sign of the amount is derived from the category type, the
	// absolute value is stored.
	Amount decimal.Decimal `json:"amount" example:"1403" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Title        string              `json:"title" example:"Food" default:""`             // Display title, defaults to the category label
	CategoryID   string              `json:"categoryId" example:"food"`                   // ID of the category
	CategoryType models.CategoryType `json:"categoryType" example:"expense"`              // Type of the category, decides the sign of the amount
	Note         string              `json:"note" example:"Lunch" default:""`             // A note
	ImageURI     string              `json:"imageUri" example:"file:///receipt.jpg" default:""` // Reference to a receipt image
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:         editable.Date,
		Amount:       editable.Amount,
		Title:        editable.Title,
		CategoryID:   editable.CategoryID,
		CategoryType: editable.CategoryType,
		Note:         editable.Note,
		ImageURI:     editable.ImageURI,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:         model.Date,
			Amount:       model.Amount,
			Title:        model.Title,
			CategoryID:   model.CategoryID,
			CategoryType: model.CategoryType,
			Note:         model.Note,
			ImageURI:     model.ImageURI,
		},
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Date              time.Time           `form:"date" filterField:"false"`              // Exact date. Time is ignored.
	FromDate          time.Time           `form:"fromDate" filterField:"false"`          // From this date. Time is ignored.
	UntilDate         time.Time           `form:"untilDate" filterField:"false"`         // Until this date. Time is ignored.
	Amount            decimal.Decimal     `form:"amount"`                                // Exact amount as stored, expenses are negative
	AmountLessOrEqual decimal.Decimal     `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal     `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Title             string              `form:"title" filterField:"false"`             // Title contains this string
	Note              string              `form:"note" filterField:"false"`              // Note contains this string
	CategoryID        string              `form:"category"`                              // ID of the category
	CategoryType      models.CategoryType `form:"type" filterField:"false"`              // Type of the category
	Offset            uint                `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit             int                 `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// This does not set the string or date fields since they are
	// handled in the controller function
	return TransactionEditable{
		Amount:     f.Amount,
		CategoryID: f.CategoryID,
	}.model()
}
