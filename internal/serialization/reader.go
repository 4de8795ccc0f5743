package serialization

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/mininn-ml/mininn/internal/nn"
	"github.com/mininn-ml/mininn/internal/tensor"
)

// LoadModel reads a .minn model file from disk.
//
// Any failure (I/O, short read, or format violation) is returned
// wrapped with the file path.
func LoadModel(path string) (*nn.Model, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open model file %s", path)
	}
	defer file.Close() //nolint:errcheck // read-only file

	model, err := ReadModel(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load model from %s", path)
	}
	return model, nil
}

// ReadModel reads a serialized model from r.
//
// Load state machine: header → validate → layers[0..num_layers) →
// input shape → output shape → done.
func ReadModel(r io.Reader) (*nn.Model, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	if err := validateHeader(hdr); err != nil {
		return nil, err
	}
	klog.V(1).Infof("model header: version %d.%d, %d layers",
		hdr.VersionMajor, hdr.VersionMinor, hdr.NumLayers)

	model := nn.NewModel()
	for i := uint32(0); i < hdr.NumLayers; i++ {
		layer, err := readLayer(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read layer %d", i)
		}
		klog.V(1).Infof("loaded layer %d: %s", i, layer.Type())
		if err := model.AddLayer(layer); err != nil {
			return nil, err
		}
	}

	inputShape, err := readShape(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input shape")
	}
	outputShape, err := readShape(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read output shape")
	}
	model.SetInputShape(inputShape)
	model.SetOutputShape(outputShape)

	return model, nil
}

// readHeader reads the 16-byte header field by field.
func readHeader(r io.Reader) (header, error) {
	var hdr header
	for _, field := range []any{
		&hdr.Magic, &hdr.VersionMajor, &hdr.VersionMinor, &hdr.NumLayers, &hdr.Reserved,
	} {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return hdr, errors.Wrap(err, "failed to read header")
		}
	}
	return hdr, nil
}

// validateHeader checks the magic number, major version, and layer
// count bounds.
func validateHeader(hdr header) error {
	if hdr.Magic != MagicNumber {
		return errors.Wrapf(ErrInvalidMagic, "got 0x%08X, expected 0x%08X", hdr.Magic, MagicNumber)
	}
	if hdr.VersionMajor != VersionMajor {
		return errors.Wrapf(ErrUnsupportedVersion, "got %d.%d, supported major version is %d",
			hdr.VersionMajor, hdr.VersionMinor, VersionMajor)
	}
	if hdr.NumLayers == 0 {
		return errors.Wrap(ErrInvalidLayerCount, "model must contain at least one layer")
	}
	if hdr.NumLayers > MaxLayers {
		return errors.Wrapf(ErrInvalidLayerCount, "model contains too many layers: %d (max %d)",
			hdr.NumLayers, MaxLayers)
	}
	return nil
}

// readLayer reads one layer record: a 1-byte type tag, followed by the
// weight and bias tensors when the tag is Linear.
func readLayer(r io.Reader) (nn.Layer, error) {
	var tag uint8
	if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
		return nil, errors.Wrap(err, "failed to read layer type tag")
	}

	switch nn.LayerType(tag) {
	case nn.LayerLinear:
		weights, err := readTensor(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read linear weights")
		}
		bias, err := readTensor(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read linear bias")
		}
		return nn.NewLinear(weights, bias)

	case nn.LayerReLU:
		return nn.NewReLU(), nil

	case nn.LayerSigmoid:
		return nn.NewSigmoid(), nil

	case nn.LayerSoftmax:
		return nn.NewSoftmax(), nil

	default:
		return nil, errors.Wrapf(ErrUnknownLayerType, "tag %d", tag)
	}
}

// readTensor reads a serialized tensor: dtype tag, rank, dimensions,
// then the float32 payload.
func readTensor(r io.Reader) (*tensor.Tensor, error) {
	var dtypeTag uint8
	if err := binary.Read(r, binary.LittleEndian, &dtypeTag); err != nil {
		return nil, errors.Wrap(err, "failed to read tensor dtype")
	}
	// Int8/Int4 payloads are format-reserved but not loadable yet.
	if tensor.DataType(dtypeTag) != tensor.Float32 {
		return nil, errors.Wrapf(ErrUnsupportedDType, "tag %d", dtypeTag)
	}

	var rank uint32
	if err := binary.Read(r, binary.LittleEndian, &rank); err != nil {
		return nil, errors.Wrap(err, "failed to read tensor rank")
	}
	if rank < MinTensorRank || rank > MaxTensorRank {
		return nil, errors.Wrapf(ErrInvalidRank, "got %d, expected %d..%d",
			rank, MinTensorRank, MaxTensorRank)
	}

	shape := make(tensor.Shape, rank)
	for i := range shape {
		var dim uint32
		if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
			return nil, errors.Wrapf(err, "failed to read tensor dimension %d", i)
		}
		shape[i] = int(dim)
	}

	t, err := tensor.New(shape)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, t.Size()*4)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, errors.Wrap(err, "failed to read tensor data")
	}
	data := t.Data()
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(payload[i*4:]))
	}

	return t, nil
}

// readShape reads the trailing shape metadata: a uint32 rank followed
// by that many uint32 dimensions.
func readShape(r io.Reader) (tensor.Shape, error) {
	var rank uint32
	if err := binary.Read(r, binary.LittleEndian, &rank); err != nil {
		return nil, errors.Wrap(err, "failed to read shape rank")
	}

	shape := make(tensor.Shape, rank)
	for i := range shape {
		var dim uint32
		if err := binary.Read(r, binary.LittleEndian, &dim); err != nil {
			return nil, errors.Wrapf(err, "failed to read shape dimension %d", i)
		}
		shape[i] = int(dim)
	}
	return shape, nil
}
