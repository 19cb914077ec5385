package checkpoint

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/ember-ml/ember/internal/nn"
)

// Save writes the parameters to path in .ember format. Parameter order is
// preserved so a checkpoint can be restored into a freshly constructed model
// of the same architecture.
func Save(path string, params []*nn.Parameter, modelType string, metadata map[string]string) error {
	header := Header{
		FormatVersion: FormatVersion,
		ModelType:     modelType,
		CreatedAt:     time.Now().UTC(),
		Tensors:       make([]TensorMeta, 0, len(params)),
		Metadata:      metadata,
	}

	// Build the data section in memory; parameter tensors are small.
	var data bytes.Buffer
	var offset int64
	for _, p := range params {
		values := p.Tensor().Data()
		size := int64(len(values) * 8)
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   p.Name(),
			Shape:  append([]int(nil), p.Tensor().Shape()...),
			Offset: offset,
			Size:   size,
		})
		offset += size

		buf := make([]byte, 8)
		for _, v := range values {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
			data.Write(buf)
		}
	}

	sum := sha256.Sum256(data.Bytes())
	header.Checksum = hex.EncodeToString(sum[:])

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "checkpoint: marshal header")
	}

	var out bytes.Buffer
	out.WriteString(MagicBytes)
	if err := binary.Write(&out, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return errors.Wrap(err, "checkpoint: write version")
	}
	if err := binary.Write(&out, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "checkpoint: write header size")
	}
	out.Write(headerJSON)

	padding := (DataAlignment - out.Len()%DataAlignment) % DataAlignment
	out.Write(make([]byte, padding))
	out.Write(data.Bytes())

	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "checkpoint: write %s", path)
	}
	return nil
}
