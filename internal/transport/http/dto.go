package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vladislavdragonenkov/marketsvc/internal/domain"
)

// CustomerResponse — элемент ответа списка покупателей.
type CustomerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CustomerOrderLineResponse — строка заказа покупателя. Имена полей
// повторяют колонки выборки: name/description товара, цена и total.
type CustomerOrderLineResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// RangeOrderLineResponse — строка выборки заказов за период.
type RangeOrderLineResponse struct {
	CustomerName string `json:"customer_name"`
	ItemName     string `json:"item_name"`
	Price        string `json:"price"`
	Total        string `json:"total"`
}

// OrderTotalResponse — сумма одного заказа.
type OrderTotalResponse struct {
	OrderTotal string `json:"order_total"`
}

// CreateOrderRequest — тело POST /api/add_new_order.
type CreateOrderRequest struct {
	CustomerID int64                    `json:"customer_id"`
	Items      []CreateOrderRequestItem `json:"items"`
}

// CreateOrderRequestItem — входная позиция заказа.
type CreateOrderRequestItem struct {
	ID       int64 `json:"id"`
	Quantity int32 `json:"quantity"`
}

// CreateOrderResponse — успешный ответ создания заказа.
type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func mapCustomers(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerResponse{ID: c.ID, Name: c.Name})
	}
	return out
}

func mapCustomerOrderLines(lines []domain.CustomerOrderLine) []CustomerOrderLineResponse {
	out := make([]CustomerOrderLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, CustomerOrderLineResponse{
			Name:        line.ItemName,
			Description: line.ItemDescription,
			Price:       formatMinor(line.PriceMinor),
			Total:       formatMinor(line.LineTotalMinor),
		})
	}
	return out
}

func mapRangeOrderLines(lines []domain.RangeOrderLine) []RangeOrderLineResponse {
	out := make([]RangeOrderLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, RangeOrderLineResponse{
			CustomerName: line.CustomerName,
			ItemName:     line.ItemName,
			Price:        formatMinor(line.PriceMinor),
			Total:        formatMinor(line.LineTotalMinor),
		})
	}
	return out
}

// formatMinor переводит минимальные единицы в десятичную строку:
// 1250 -> "12.50". Внутри сервис считает только в int64.
func formatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}
