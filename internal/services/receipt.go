package services

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"worqely/internal/models"
)

// RenderReceipt writes a one-page PDF receipt for order to w. Core PDF fonts
// have no rupee glyph, so amounts are printed as INR.
func RenderReceipt(order *models.Order, user *models.User, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(190, 10, "WORQELY Store Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(190, 7, fmt.Sprintf("Order ID: %s", order.ID))
	pdf.Ln(7)
	pdf.Cell(190, 7, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02 15:04:05")))
	pdf.Ln(7)
	if user != nil {
		pdf.Cell(190, 7, fmt.Sprintf("Customer: %s (%s)", user.FullName, user.Mobile))
		pdf.Ln(7)
	}
	pdf.Cell(190, 7, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(80, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Mode", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(55, 8, "Amount (INR)", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		mode := string(item.Mode)
		if item.Mode == models.ModeRental {
			mode = fmt.Sprintf("rental, %d d", item.RentalDays)
		}
		pdf.CellFormat(80, 7, item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, mode, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(55, 7, item.LineTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(135, 9, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(55, 9, order.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	return pdf.Output(w)
}
