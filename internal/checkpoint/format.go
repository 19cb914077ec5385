package checkpoint

import "time"

// Format constants for the .ember file layout:
//
//	magic "EMBR" | version uint32 | header size uint64 | header JSON |
//	padding to 64-byte boundary | tensor data (float64, little-endian)
const (
	MagicBytes    = "EMBR"
	FormatVersion = 1
	DataAlignment = 64

	// Upper bound on the JSON header; anything larger is a corrupt file.
	maxHeaderSize = 16 * 1024 * 1024
)

// Header is the JSON header of a .ember file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	ModelType     string            `json:"model_type"`
	CreatedAt     time.Time         `json:"created_at"`
	Tensors       []TensorMeta      `json:"tensors"`
	Checksum      string            `json:"checksum"` // SHA-256 of the data section, hex
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// TensorMeta describes one saved tensor. Offset and Size are in bytes
// relative to the start of the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"`
	Size   int64  `json:"size"`
}
