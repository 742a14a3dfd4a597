package net

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/teaplant/darjnet/internal/activations"
)

// The .darj model format is line-oriented text. One line per node:
// comma-separated incoming weights, a semicolon, then the bias. Sensor
// nodes have no incoming links and serialize as ";bias". A literal "lb"
// line closes each layer, including the last; the final line is the
// activation keyword.
const (
	modelExt    = ".darj"
	layerMarker = "lb"
)

// maxNameAttempts bounds how many fresh random suffixes WriteModel tries
// before giving up on a crowded namespace.
const maxNameAttempts = 100

// WriteModel serializes the network to model_<name>_<random-u32>.darj and
// returns the file's path. name may carry a directory prefix; the random
// suffix keeps runs from clobbering each other, and a name collision
// triggers a fresh suffix rather than an overwrite. Success is reported
// only after the write has been flushed and synced; a partially written
// file is removed on failure.
func (n *Network) WriteModel(name string, rng *rand.Rand) (string, error) {
	dir, base := filepath.Split(name)

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		suffix := randUint32(rng)
		path := filepath.Join(dir, fmt.Sprintf("model_%s_%d%s", base, suffix, modelExt))

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", &Error{Kind: WriteFailed, Op: "create model", Path: path, Err: err}
		}
		if err := n.encode(file); err != nil {
			file.Close()
			os.Remove(path)
			return "", &Error{Kind: WriteFailed, Op: "write model", Path: path, Err: err}
		}
		if err := file.Sync(); err != nil {
			file.Close()
			os.Remove(path)
			return "", &Error{Kind: WriteFailed, Op: "sync model", Path: path, Err: err}
		}
		if err := file.Close(); err != nil {
			os.Remove(path)
			return "", &Error{Kind: WriteFailed, Op: "close model", Path: path, Err: err}
		}
		return path, nil
	}
	return "", &Error{
		Kind: WriteFailed, Op: "name model", Path: name,
		Err: errors.Errorf("no free name in %d attempts", maxNameAttempts),
	}
}

func (n *Network) encode(file *os.File) error {
	w := bufio.NewWriter(file)
	for _, layer := range n.layers {
		for j := range layer {
			node := &layer[j]
			for k, weight := range node.linkWeights {
				if k > 0 {
					w.WriteByte(',')
				}
				w.WriteString(strconv.FormatFloat(weight, 'g', -1, 64))
			}
			w.WriteByte(';')
			w.WriteString(strconv.FormatFloat(node.bias, 'g', -1, 64))
			w.WriteByte('\n')
		}
		w.WriteString(layerMarker)
		w.WriteByte('\n')
	}
	w.WriteString(n.act.String())
	return w.Flush()
}

// ReadModel reconstructs a network from a .darj file. The sensor and
// answer indices are rederived as the first and last layer, and the
// parameter count is recomputed. Malformed numeric fields, inconsistent
// layer widths, a dangling unterminated layer, or a missing activation
// line are all ReadFailed errors, never a crash.
func ReadModel(path string) (*Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: ReadFailed, Op: "open model", Path: path, Err: err}
	}
	defer file.Close()

	var layers [][]Node
	var layer []Node
	var act activations.Activation

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == layerMarker {
			layers = append(layers, layer)
			layer = nil
			continue
		}
		if parsed, err := activations.Parse(line); err == nil {
			act = parsed
			continue
		}
		node, err := parseNodeLine(line)
		if err != nil {
			return nil, &Error{Kind: ReadFailed, Op: "parse model", Path: path, Err: err}
		}
		layer = append(layer, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Kind: ReadFailed, Op: "read model", Path: path, Err: err}
	}
	if len(layer) > 0 {
		return nil, &Error{Kind: ReadFailed, Op: "parse model", Path: path,
			Err: errors.New("unterminated layer at end of file")}
	}
	if act == nil {
		return nil, &Error{Kind: ReadFailed, Op: "parse model", Path: path,
			Err: errors.New("missing activation function line")}
	}
	if len(layers) == 0 {
		return nil, &Error{Kind: ReadFailed, Op: "parse model", Path: path,
			Err: errors.New("model has no layers")}
	}
	for l := 1; l < len(layers); l++ {
		for j := range layers[l] {
			if layers[l][j].links != len(layers[l-1]) {
				return nil, &Error{Kind: ReadFailed, Op: "parse model", Path: path,
					Err: errors.Errorf("layer %d node %d has %d links, previous layer has %d nodes",
						l, j, layers[l][j].links, len(layers[l-1]))}
			}
		}
	}

	n := &Network{
		layers:     layers,
		sensor:     0,
		answer:     len(layers) - 1,
		parameters: countParameters(layers),
		act:        act,
		snap:       make([]float64, maxWidth(layers)),
	}
	return n, nil
}

func parseNodeLine(line string) (Node, error) {
	parts := strings.SplitN(line, ";", 2)
	if len(parts) != 2 {
		return Node{}, errors.Errorf("node line %q has no bias field", line)
	}
	bias, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Node{}, errors.Wrapf(err, "bias field %q", parts[1])
	}

	// Sensor nodes carry no incoming weights: the line is just ";bias".
	var weights []float64
	if parts[0] != "" {
		fields := strings.Split(parts[0], ",")
		weights = make([]float64, len(fields))
		for i, field := range fields {
			weights[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return Node{}, errors.Wrapf(err, "weight field %q", field)
			}
		}
	}
	return parsedNode(weights, bias), nil
}

func randUint32(rng *rand.Rand) uint32 {
	if rng != nil {
		return rng.Uint32()
	}
	return rand.Uint32()
}
