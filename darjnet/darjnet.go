// Package darjnet re-exports the engine's public surface: network
// construction, supervised and adversarial training, inference, and the
// .darj model codec.
package darjnet

import (
	"github.com/teaplant/darjnet/internal/activations"
	"github.com/teaplant/darjnet/internal/data"
	"github.com/teaplant/darjnet/internal/label"
	"github.com/teaplant/darjnet/internal/net"
)

// Re-export common types for easier access
type (
	Network       = net.Network
	Classifier    = net.Classifier
	Generative    = net.Generative
	Distinguisher = net.Distinguisher
	Result        = net.Result
	Callback      = net.Callback
	BaseCallback  = net.BaseCallback
	Logger        = net.Logger
	CSVLogger     = net.CSVLogger
	Error         = net.Error
	Kind          = net.Kind
	Sample        = data.Sample
	Label         = label.Value
	Activation    = activations.Activation
)

// Activations
var (
	Sigmoid = activations.Sigmoid{}
	Linear  = activations.Linear{}
	Tanh    = activations.Tanh{}
	Step    = activations.Step{}
)

// Error kinds
const (
	Unknown              = net.Unknown
	WriteFailed          = net.WriteFailed
	ReadFailed           = net.ReadFailed
	RemoveFailed         = net.RemoveFailed
	NestedTrainingFailed = net.NestedTrainingFailed
	ConversionFailed     = net.ConversionFailed
)

// Label kinds
const (
	KindInteger = label.KindInteger
	KindFloat   = label.KindFloat
	KindBoolean = label.KindBoolean
	KindText    = label.KindText
)

// New creates a network with random weights. See net.New.
func New(inputs, hidden, outputs, hiddenLayers int, act Activation) *Network {
	return net.New(inputs, hidden, outputs, hiddenLayers, act, nil)
}

// ReadModel reconstructs a network from a .darj file.
func ReadModel(path string) (*Network, error) {
	return net.ReadModel(path)
}

// KindOf classifies a training or persistence error.
func KindOf(err error) Kind {
	return net.KindOf(err)
}

// NewCSVLogger creates a callback that logs epochs to a CSV file.
func NewCSVLogger(filename string, append bool) *CSVLogger {
	return net.NewCSVLogger(filename, append)
}

// Labels
func Int(v int64) Label     { return label.Int(v) }
func Float(v float64) Label { return label.Float(v) }
func Bool(v bool) Label     { return label.Bool(v) }
func Text(v string) Label   { return label.Text(v) }

// LoadCSV loads labeled samples from a CSV file. See data.LoadCSV.
func LoadCSV(filename string, labelCol int, kind label.Kind, hasHeader bool) ([]Sample, error) {
	return data.LoadCSV(filename, labelCol, kind, hasHeader)
}

// Standardize rescales every feature column to zero mean and unit
// deviation, in place.
func Standardize(samples []Sample) {
	data.Standardize(samples)
}
