package checkpoint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/ember-ml/ember/internal/array"
	"github.com/ember-ml/ember/internal/nn"
)

// Checkpoint is a loaded .ember file: the header plus every tensor decoded
// into an array, in saved order. Parameter names may repeat across layers,
// so tensors are kept positionally rather than in a name-keyed map.
type Checkpoint struct {
	header  Header
	tensors []*array.Array
}

// Load reads and fully validates a .ember file. The whole data section is
// decoded and checksummed up front; a Checkpoint never refers back to the
// file it came from.
func Load(path string) (*Checkpoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "checkpoint: read %s", path)
	}

	if len(raw) < len(MagicBytes)+4+8 || string(raw[:len(MagicBytes)]) != MagicBytes {
		return nil, ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(raw[4:8])
	if version != FormatVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "got %d, expected %d", version, FormatVersion)
	}
	headerSize := binary.LittleEndian.Uint64(raw[8:16])
	if headerSize > maxHeaderSize || 16+headerSize > uint64(len(raw)) {
		return nil, errors.New("checkpoint: header size out of range")
	}

	var header Header
	if err := json.Unmarshal(raw[16:16+headerSize], &header); err != nil {
		return nil, errors.Wrap(err, "checkpoint: parse header")
	}

	dataOffset := 16 + int(headerSize)
	dataOffset += (DataAlignment - dataOffset%DataAlignment) % DataAlignment
	if dataOffset > len(raw) {
		return nil, errors.New("checkpoint: truncated data section")
	}
	data := raw[dataOffset:]

	sum := sha256.Sum256(data)
	if hex.EncodeToString(sum[:]) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	tensors := make([]*array.Array, 0, len(header.Tensors))
	for _, meta := range header.Tensors {
		if meta.Offset < 0 || meta.Offset+meta.Size > int64(len(data)) || meta.Size%8 != 0 {
			return nil, errors.Errorf("checkpoint: tensor %q extends past data section", meta.Name)
		}
		shape := array.Shape(append([]int(nil), meta.Shape...))
		values := make([]float64, meta.Size/8)
		for i := range values {
			bits := binary.LittleEndian.Uint64(data[meta.Offset+int64(i)*8:])
			values[i] = math.Float64frombits(bits)
		}
		a, err := array.FromSlice(values, shape)
		if err != nil {
			return nil, errors.Wrapf(err, "checkpoint: tensor %q", meta.Name)
		}
		tensors = append(tensors, a)
	}

	return &Checkpoint{header: header, tensors: tensors}, nil
}

// Header returns the file header.
func (c *Checkpoint) Header() Header {
	return c.header
}

// Tensors returns the saved tensors in saved order, parallel to
// Header().Tensors.
func (c *Checkpoint) Tensors() []*array.Array {
	return c.tensors
}

// Restore copies saved values into the given parameters, matched by
// position. Each pair must agree on name and shape. Values are written
// through the parameter's existing data buffer so optimizers and recorded
// graphs keep observing the same array.
func (c *Checkpoint) Restore(params []*nn.Parameter) error {
	if len(params) != len(c.tensors) {
		return errors.Errorf("checkpoint: model has %d parameters, file has %d tensors",
			len(params), len(c.tensors))
	}
	for i, p := range params {
		meta := c.header.Tensors[i]
		if meta.Name != p.Name() {
			return errors.Errorf("checkpoint: parameter %d is %q, saved tensor is %q",
				i, p.Name(), meta.Name)
		}
		saved := c.tensors[i]
		if !saved.Shape().Equal(p.Tensor().Shape()) {
			return errors.Errorf("checkpoint: parameter %q has shape %v, saved tensor has %v",
				p.Name(), p.Tensor().Shape(), saved.Shape())
		}
		copy(p.Tensor().Data(), saved.Data())
	}
	return nil
}
