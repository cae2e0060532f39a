package quant

import "strings"

// OverrideExpirySentinel is the checkbox value that lets an expired standard through
const OverrideExpirySentinel = "1"

// AttributeRequest is the quant creation form as submitted. It is never persisted.
type AttributeRequest struct {
	SwipecardCode      string `json:"swipecard_code" form:"swipecard_code"`
	QuantType          string `json:"quant_type" form:"quant_type"`
	AssayBarcode       string `json:"assay_barcode" form:"assay_barcode"`
	StandardBarcode    string `json:"standard_barcode" form:"standard_barcode"`
	InputBarcode       string `json:"input_barcode" form:"input_barcode"`
	OverrideExpiryDate string `json:"override_expiry_date" form:"override_expiry_date"`
}

// requiredFields are checked for presence in this order
var requiredFields = []Field{
	FieldSwipecardCode,
	FieldQuantType,
	FieldAssayBarcode,
	FieldStandardBarcode,
	FieldInputBarcode,
}

// Value returns the trimmed value submitted for field
func (r AttributeRequest) Value(field Field) string {
	switch field {
	case FieldSwipecardCode:
		return strings.TrimSpace(r.SwipecardCode)
	case FieldQuantType:
		return strings.TrimSpace(r.QuantType)
	case FieldAssayBarcode:
		return strings.TrimSpace(r.AssayBarcode)
	case FieldStandardBarcode:
		return strings.TrimSpace(r.StandardBarcode)
	case FieldInputBarcode:
		return strings.TrimSpace(r.InputBarcode)
	default:
		return ""
	}
}

// Present reports whether field holds a non-blank value
func (r AttributeRequest) Present(field Field) bool {
	return r.Value(field) != ""
}

// CheckExpiry is false when the operator ticked the override box
func (r AttributeRequest) CheckExpiry() bool {
	return strings.TrimSpace(r.OverrideExpiryDate) != OverrideExpirySentinel
}
