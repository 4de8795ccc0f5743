package serialization

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/mininn-ml/mininn/internal/nn"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// SaveModel writes a model to disk in .minn format. The layout is the
// exact inverse of LoadModel, so a saved model round-trips.
func SaveModel(model *nn.Model, path string) error {
	if err := validateForWrite(model); err != nil {
		return err
	}

	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create model file %s", path)
	}

	w := bufio.NewWriter(file)
	if err := WriteModel(w, model); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "failed to save model to %s", path)
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "failed to save model to %s", path)
	}
	return file.Close()
}

// WriteModel writes a serialized model to w: header, layer records,
// then input and output shape metadata.
func WriteModel(w io.Writer, model *nn.Model) error {
	if err := validateForWrite(model); err != nil {
		return err
	}

	hdr := header{
		Magic:        MagicNumber,
		VersionMajor: VersionMajor,
		VersionMinor: VersionMinor,
		NumLayers:    uint32(model.NumLayers()),
	}
	for _, field := range []any{
		hdr.Magic, hdr.VersionMajor, hdr.VersionMinor, hdr.NumLayers, hdr.Reserved,
	} {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return errors.Wrap(err, "failed to write header")
		}
	}

	for i, layer := range model.Layers() {
		if err := writeLayer(w, layer); err != nil {
			return errors.Wrapf(err, "failed to write layer %d", i)
		}
	}

	if err := writeShape(w, model.InputShape()); err != nil {
		return errors.Wrap(err, "failed to write input shape")
	}
	if err := writeShape(w, model.OutputShape()); err != nil {
		return errors.Wrap(err, "failed to write output shape")
	}
	return nil
}

// validateForWrite rejects models that could not be read back.
func validateForWrite(model *nn.Model) error {
	if model == nil {
		return errors.New("cannot save nil model")
	}
	if model.NumLayers() == 0 {
		return errors.Wrap(ErrInvalidLayerCount, "model must contain at least one layer")
	}
	if model.NumLayers() > MaxLayers {
		return errors.Wrapf(ErrInvalidLayerCount, "model contains too many layers: %d (max %d)",
			model.NumLayers(), MaxLayers)
	}
	return nil
}

// writeLayer writes one layer record.
func writeLayer(w io.Writer, layer nn.Layer) error {
	if err := binary.Write(w, binary.LittleEndian, uint8(layer.Type())); err != nil {
		return errors.Wrap(err, "failed to write layer type tag")
	}

	linear, ok := layer.(*nn.Linear)
	if !ok {
		return nil // activation layers carry no payload
	}

	if err := writeTensor(w, linear.Weights()); err != nil {
		return errors.Wrap(err, "failed to write linear weights")
	}
	if err := writeTensor(w, linear.Bias()); err != nil {
		return errors.Wrap(err, "failed to write linear bias")
	}
	return nil
}

// writeTensor writes a serialized tensor: dtype tag, rank,
// dimensions, then the float32 payload.
func writeTensor(w io.Writer, t *tensor.Tensor) error {
	if err := binary.Write(w, binary.LittleEndian, uint8(t.DType())); err != nil {
		return errors.Wrap(err, "failed to write tensor dtype")
	}

	rank := t.Rank()
	if rank < MinTensorRank || rank > MaxTensorRank {
		return errors.Wrapf(ErrInvalidRank, "got %d, expected %d..%d",
			rank, MinTensorRank, MaxTensorRank)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(rank)); err != nil {
		return errors.Wrap(err, "failed to write tensor rank")
	}
	for i, dim := range t.Shape() {
		if err := binary.Write(w, binary.LittleEndian, uint32(dim)); err != nil {
			return errors.Wrapf(err, "failed to write tensor dimension %d", i)
		}
	}

	payload := make([]byte, t.Size()*4)
	for i, v := range t.Data() {
		binary.LittleEndian.PutUint32(payload[i*4:], math.Float32bits(v))
	}
	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, "failed to write tensor data")
	}
	return nil
}

// writeShape writes shape metadata: a uint32 rank followed by that
// many uint32 dimensions.
func writeShape(w io.Writer, shape tensor.Shape) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(shape))); err != nil {
		return errors.Wrap(err, "failed to write shape rank")
	}
	for i, dim := range shape {
		if err := binary.Write(w, binary.LittleEndian, uint32(dim)); err != nil {
			return errors.Wrapf(err, "failed to write shape dimension %d", i)
		}
	}
	return nil
}
