package orderControllers

import (
	"net/http"
	"time"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersToExcelHandler streams all orders as an .xlsx sheet, one row
// per order item so the shop can total quantities in a spreadsheet.
func ExportOrdersToExcelHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		headers := []string{
			"OrderID", "Mobile", "Address", "Status", "CreatedAt",
			"ProductID", "Product", "Quantity", "Price",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			if len(o.Items) == 0 {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.MobileNumber)
				row.AddCell().SetValue(o.Address)
				row.AddCell().SetValue(string(o.OrderStatus))
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04"))
				continue
			}
			for _, item := range o.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.MobileNumber)
				row.AddCell().SetValue(o.Address)
				row.AddCell().SetValue(string(o.OrderStatus))
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04"))
				row.AddCell().SetValue(item.ProductID)
				row.AddCell().SetValue(item.Product.MedicineNameEn)
				row.AddCell().SetValue(item.Quantity)
				if item.Price != nil {
					row.AddCell().SetValue(*item.Price)
				} else {
					row.AddCell().SetValue("")
				}
			}
		}

		filename := "orders_" + time.Now().Format("2006-01-02") + ".xlsx"
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
	}
}
