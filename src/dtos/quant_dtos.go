package dtos

import "time"

// QuantSummaryDTO is a flattened view of a quant with the barcodes and names of its references
type QuantSummaryDTO struct {
	ID              int       `json:"id"`
	UUID            string    `json:"uuid"`
	QuantType       string    `json:"quantType"`
	AssayBarcode    string    `json:"assayBarcode"`
	StandardBarcode string    `json:"standardBarcode"`
	InputBarcode    string    `json:"inputBarcode"`
	InputName       *string   `json:"inputName,omitempty"`
	UserLogin       string    `json:"userLogin"`
	CreatedAt       time.Time `json:"createdAt"`
}
