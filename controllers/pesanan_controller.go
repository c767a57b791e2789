package controllers

import (
	"fmt"
	"time"

	"pujasari/models"
	"pujasari/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	orderSheet      = "Riwayat Checkout"
	itemSheet       = "Detail Item"
)

// OrderController menambahkan export Excel di atas CRUD pesanan
type OrderController struct {
	*Resource[models.Order, *models.Order, models.OrderInput, models.OrderPatch, models.OrderQuery]
}

func NewOrderController(store repository.Store, log *logrus.Logger) *OrderController {
	return &OrderController{
		Resource: NewResource[models.Order, *models.Order, models.OrderInput, models.OrderPatch, models.OrderQuery](
			"pesanan", repository.NewRefs(store, repository.OrdersCollection), log),
	}
}

// GET /export
// Filter sama dengan list pesanan
func (o *OrderController) Export(c *fiber.Ctx) error {
	q, err := o.parseQuery(c)
	if err != nil {
		return err
	}
	orders, err := o.Find(c.UserContext(), q)
	if err != nil {
		o.log.WithError(err).Error("Gagal mengambil data pesanan untuk export")
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal saat mengambil data pesanan")
	}

	f, err := OrderWorkbook(orders)
	if err != nil {
		o.log.WithError(err).Error("Gagal membuat file excel")
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal saat membuat file excel")
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		o.log.WithError(err).Error("Gagal menulis file excel")
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal saat membuat file excel")
	}
	o.log.Infof("Export %d pesanan", len(orders))

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename=riwayat_checkout.xlsx")
	return c.Send(buf.Bytes())
}

// OrderWorkbook membuat dua sheet: ringkasan per pesanan dan detail per item.
func OrderWorkbook(orders []models.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, orders); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, orders []models.Order) error {
	if err := f.SetSheetName("Sheet1", orderSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for _, s := range orderSheets(orders) {
		if err := writeRows(f, s.name, s.rows, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)
	return nil
}

type sheetRows struct {
	name string
	rows [][]any
}

// orderSheets menyusun isi tiap sheet sesuai urutan sheet di workbook
func orderSheets(orders []models.Order) []sheetRows {
	orderRows := [][]any{{"ID", "User", "Waktu", "Bank", "Metode Pembayaran", "No VA", "Status", "Jumlah Item", "Total Banyak"}}
	itemRows := [][]any{{"ID Pesanan", "ID Produk", "Banyak"}}
	for _, o := range orders {
		waktu := time.UnixMilli(o.Time).Format("2006-01-02 15:04:05")
		orderRows = append(orderRows, []any{
			o.ID, o.UserID, waktu, string(o.Bank), string(o.PaymentMethod), o.NoVC, string(o.Status),
			len(o.CheckoutItems), o.Total(),
		})
		for _, it := range o.CheckoutItems {
			itemRows = append(itemRows, []any{o.ID, it.ItemID, it.Amount})
		}
	}
	return []sheetRows{
		{name: orderSheet, rows: orderRows},
		{name: itemSheet, rows: itemRows},
	}
}

// writeRows menulis rows mulai A1, baris pertama sebagai header
func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for r, row := range rows {
		for i, v := range row {
			cell, err := excelize.CoordinatesToCellName(i+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet, err)
			}
		}
	}
	if len(rows) == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}
	if err := f.AutoFilter(sheet, "A1:"+last, []excelize.AutoFilterOptions{}); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}
