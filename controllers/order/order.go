package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Bilingual user-facing messages. The separator and wording are part of the
// wire contract with the storefront; do not reword.
const (
	MsgMobileRequired  = "mobile_number is required. | मोबाइल नंबर जरूरी है।"
	MsgMobileInvalid   = "Invalid mobile number. | सही 10 अंक का नंबर डालें।"
	MsgAddressRequired = "address is required. | पता जरूरी है।"
	MsgCartRequired    = "cart_items is required and must be a non-empty array. | cart_items जरूरी है और खाली नहीं होनी चाहिए।"
	MsgOrderPlaced     = "ऑर्डर सफलतापूर्वक हो गया! | Order placed successfully!"
)

// Indian mobile numbers: exactly 10 digits, first digit 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidationError is a client-caused rejection of an order submission.
// It is always produced before any transaction is opened.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// -------- Request Structs --------

// SubmitOrderRequest is the public order payload. mobile_number and address
// are declared as any because older frontends send the number unquoted, and
// the cart is kept raw so a malformed shape fails cart validation with the
// bilingual message instead of a JSON binding error.
type SubmitOrderRequest struct {
	MobileNumber any             `json:"mobile_number"`
	Address      any             `json:"address"`
	CartItems    json.RawMessage `json:"cart_items"`
	Items        json.RawMessage `json:"items"` // legacy alias for cart_items
}

// CartLine is one submitted cart entry before normalization.
type CartLine struct {
	ProductID any `json:"product_id"`
	Quantity  any `json:"quantity"`
	Price     any `json:"price"`
}

// -------- Validation & Normalization --------

func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// validateSubmitOrder runs the checks in contract order: mobile presence,
// mobile format, address presence, cart presence/shape. The first failing
// check wins.
func validateSubmitOrder(req SubmitOrderRequest) (mobile, address string, lines []CartLine, err error) {
	mobile = asString(req.MobileNumber)
	if mobile == "" {
		return "", "", nil, &ValidationError{Message: MsgMobileRequired}
	}
	if !mobilePattern.MatchString(mobile) {
		return "", "", nil, &ValidationError{Message: MsgMobileInvalid}
	}

	address = asString(req.Address)
	if address == "" {
		return "", "", nil, &ValidationError{Message: MsgAddressRequired}
	}

	raw := req.CartItems
	if !rawPresent(raw) {
		raw = req.Items
	}
	if !rawPresent(raw) {
		return "", "", nil, &ValidationError{Message: MsgCartRequired}
	}
	if jsonErr := json.Unmarshal(raw, &lines); jsonErr != nil || len(lines) == 0 {
		return "", "", nil, &ValidationError{Message: MsgCartRequired}
	}

	return mobile, address, lines, nil
}

// normalizeCartLine coerces one cart line into a storable OrderItem.
// A line without a usable positive product_id is dropped (ok=false), never
// an error: the contract tolerates stray junk lines from old clients.
// Quantity defaults to 1 and is floored at 1; price is kept only when it
// parses, otherwise stored as NULL.
func normalizeCartLine(line CartLine) (models.OrderItem, bool) {
	pid, ok := coerceInt(line.ProductID)
	if !ok || pid <= 0 {
		return models.OrderItem{}, false
	}

	qty := 1
	if q, qok := coerceInt(line.Quantity); qok && q != 0 {
		qty = q
	}
	if qty < 1 {
		qty = 1
	}

	var price *float64
	if line.Price != nil {
		if p, pok := coerceFloat(line.Price); pok {
			price = &p
		}
	}

	return models.OrderItem{
		ProductID: uint(pid),
		Quantity:  qty,
		Price:     price,
	}, true
}

// -------- Core Logic --------

// PlaceOrder validates a cart submission and persists it as one Order plus
// its OrderItems inside a single transaction. Either every row lands or none
// do. Returns the generated order id.
func PlaceOrder(db *gorm.DB, req SubmitOrderRequest) (uint, error) {
	mobile, address, lines, err := validateSubmitOrder(req)
	if err != nil {
		return 0, err
	}

	order := models.Order{
		MobileNumber: mobile,
		Address:      address,
		OrderStatus:  models.OrderStatusPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		// Item inserts follow cart order; the order id must exist first.
		for _, line := range lines {
			item, ok := normalizeCartLine(line)
			if !ok {
				continue
			}
			item.OrderID = order.ID
			if err := tx.Omit("Product").Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return order.ID, nil
}

// -------- Handlers --------

// SubmitOrderHandler is the public order endpoint (unauthenticated).
func SubmitOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		orderID, err := PlaceOrder(db, req)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  MsgOrderPlaced,
			"order_id": orderID,
		})
	}
}
