// internal/adapters/out/firestore/order_mapper_fs.go
package firestore

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"

	orderdom "wingx/internal/domain/order"
)

// docToOrder converts a Firestore document snapshot to orderdom.Order.
func docToOrder(doc *firestore.DocumentSnapshot) (orderdom.Order, error) {
	data := doc.Data()
	if data == nil {
		return orderdom.Order{}, fmt.Errorf("empty order document: %s", doc.Ref.ID)
	}

	getStr := func(m map[string]any, key string) string {
		if v, ok := m[key].(string); ok {
			return strings.TrimSpace(v)
		}
		return ""
	}
	getFloat := func(m map[string]any, key string) float64 {
		switch v := m[key].(type) {
		case float64:
			return v
		case int64:
			return float64(v)
		}
		return 0
	}
	getTime := func(key string) time.Time {
		if v, ok := data[key].(time.Time); ok && !v.IsZero() {
			return v.UTC()
		}
		return time.Time{}
	}

	items, err := decodeLines(data["items"])
	if err != nil {
		return orderdom.Order{}, fmt.Errorf("order %s: %w", doc.Ref.ID, err)
	}

	var customer orderdom.CustomerInfo
	if m, ok := data["customer"].(map[string]any); ok {
		customer = orderdom.CustomerInfo{
			Name:           getStr(m, "name"),
			Phone:          getStr(m, "phone"),
			Address:        getStr(m, "address"),
			Email:          getStr(m, "email"),
			UserID:         getStr(m, "userId"),
			DeliveryMethod: orderdom.DeliveryMethod(getStr(m, "deliveryMethod")),
		}
	}

	var report *orderdom.PagoMovilReport
	if m, ok := data["pagoMovil"].(map[string]any); ok {
		report = &orderdom.PagoMovilReport{
			BancoOrigen:      getStr(m, "bancoOrigen"),
			TelefonoOrigen:   getStr(m, "telefonoOrigen"),
			CedulaTitular:    getStr(m, "cedulaTitular"),
			NumeroReferencia: getStr(m, "numeroReferencia"),
			FechaPago:        getStr(m, "fechaPago"),
			MontoBs:          getFloat(m, "montoBs"),
			TasaCambio:       getFloat(m, "tasaCambio"),
			BancoDestino:     getStr(m, "bancoDestino"),
			TelefonoDestino:  getStr(m, "telefonoDestino"),
			CedulaDestino:    getStr(m, "cedulaDestino"),
		}
	}

	createdAt := getTime("createdAt")
	if createdAt.IsZero() && !doc.CreateTime.IsZero() {
		createdAt = doc.CreateTime.UTC()
	}

	var verifiedAt *time.Time
	if t := getTime("verifiedAt"); !t.IsZero() {
		verifiedAt = &t
	}

	st := orderdom.Status(getStr(data, "status"))
	if st == "" {
		return orderdom.Order{}, fmt.Errorf("order %s: missing status", doc.Ref.ID)
	}
	if len(items) == 0 {
		return orderdom.Order{}, fmt.Errorf("order %s: missing items", doc.Ref.ID)
	}

	return orderdom.Order{
		ID:         doc.Ref.ID,
		Items:      items,
		TotalPrice: getFloat(data, "totalPrice"),
		Customer:   customer,
		Notes:      getStr(data, "notes"),
		Status:     st,

		PaymentMethod: orderdom.PaymentMethod(getStr(data, "paymentMethod")),
		PagoMovil:     report,

		IdempotencyKey: getStr(data, "idempotencyKey"),

		CreatedAt:  createdAt,
		UpdatedAt:  getTime("updatedAt"),
		VerifiedAt: verifiedAt,

		RejectionReason: getStr(data, "rejectionReason"),

		ClientName:  getStr(data, "clientName"),
		Price:       getFloat(data, "price"),
		PaidAmount:  getFloat(data, "paidAmount"),
		GarmentName: getStr(data, "garmentName"),
		Size:        getStr(data, "size"),
	}, nil
}

func decodeLines(v any) ([]orderdom.Line, error) {
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("items: not a list")
	}
	out := make([]orderdom.Line, 0, len(raw))
	for i, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("items[%d]: not a map", i)
		}
		line := orderdom.Line{}
		if s, ok := m["id"].(string); ok {
			line.ProductID = strings.TrimSpace(s)
		}
		if s, ok := m["name"].(string); ok {
			line.Name = strings.TrimSpace(s)
		}
		switch p := m["price"].(type) {
		case float64:
			line.Price = p
		case int64:
			line.Price = float64(p)
		}
		switch q := m["quantity"].(type) {
		case int64:
			line.Quantity = int(q)
		case float64:
			line.Quantity = int(q)
		}
		if s, ok := m["selectedSize"].(string); ok {
			line.SelectedSize = strings.TrimSpace(s)
		}
		if s, ok := m["imageUrl"].(string); ok {
			line.ImageURL = strings.TrimSpace(s)
		}
		if line.ProductID == "" || line.Name == "" || line.Quantity < 1 {
			return nil, fmt.Errorf("items[%d]: invalid line", i)
		}
		out = append(out, line)
	}
	return out, nil
}

// orderToDoc converts orderdom.Order into a Firestore-storable map.
// Timestamps are intentionally absent: the repository injects the server
// sentinel for them.
func orderToDoc(o orderdom.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		m := map[string]any{
			"id":       it.ProductID,
			"name":     it.Name,
			"price":    it.Price,
			"quantity": it.Quantity,
		}
		if it.SelectedSize != "" {
			m["selectedSize"] = it.SelectedSize
		}
		if it.ImageURL != "" {
			m["imageUrl"] = it.ImageURL
		}
		items = append(items, m)
	}

	customer := map[string]any{
		"name":           o.Customer.Name,
		"phone":          o.Customer.Phone,
		"address":        o.Customer.Address,
		"deliveryMethod": string(o.Customer.DeliveryMethod),
	}
	if o.Customer.Email != "" {
		customer["email"] = o.Customer.Email
	}
	if o.Customer.UserID != "" {
		customer["userId"] = o.Customer.UserID
	}

	data := map[string]any{
		"items":      items,
		"totalPrice": o.TotalPrice,
		"customer":   customer,
		"status":     string(o.Status),

		"clientName":  o.ClientName,
		"price":       o.Price,
		"paidAmount":  o.PaidAmount,
		"garmentName": o.GarmentName,
		"size":        o.Size,
	}
	if o.Notes != "" {
		data["notes"] = o.Notes
	}
	if o.PaymentMethod != "" {
		data["paymentMethod"] = string(o.PaymentMethod)
	}
	if o.IdempotencyKey != "" {
		data["idempotencyKey"] = o.IdempotencyKey
	}
	if o.RejectionReason != "" {
		data["rejectionReason"] = o.RejectionReason
	}
	if r := o.PagoMovil; r != nil {
		pm := map[string]any{
			"bancoOrigen":      r.BancoOrigen,
			"telefonoOrigen":   r.TelefonoOrigen,
			"cedulaTitular":    r.CedulaTitular,
			"numeroReferencia": r.NumeroReferencia,
			"fechaPago":        r.FechaPago,
			"montoBs":          r.MontoBs,
			"tasaCambio":       r.TasaCambio,
		}
		if r.BancoDestino != "" {
			pm["bancoDestino"] = r.BancoDestino
		}
		if r.TelefonoDestino != "" {
			pm["telefonoDestino"] = r.TelefonoDestino
		}
		if r.CedulaDestino != "" {
			pm["cedulaDestino"] = r.CedulaDestino
		}
		data["pagoMovil"] = pm
	}
	return data
}
