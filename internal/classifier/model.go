package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

const (
	modelFileName    = "fakenews_v1.onnx"
	labelMapFileName = "label_map.json"
	metadataFileName = "metadata.yaml"
	vocabRelPath     = "tokenizer/vocab.txt"

	labelFake = "fake"
	labelReal = "real"

	defaultSeqLen = 256
)

// Model wraps the ONNX session for the trained fake-news classifier.
// Tensors are pre-allocated once; the mutex serializes Run calls since the
// session owns its input/output buffers.
type Model struct {
	session   *ort.AdvancedSession
	tokenizer *WordPieceTokenizer
	meta      Metadata
	fakeIdx   int
	realIdx   int
	seqLen    int

	inputIDs      *ort.Tensor[int64]
	attentionMask *ort.Tensor[int64]
	output        *ort.Tensor[float32]

	mu sync.Mutex
}

// BundleLooksValid reports whether dir contains every artifact the model
// needs. Used by startup checks before attempting a full load.
func BundleLooksValid(dir string) bool {
	required := []string{
		modelFileName,
		labelMapFileName,
		metadataFileName,
		filepath.FromSlash(vocabRelPath),
	}
	for _, p := range required {
		if _, err := os.Stat(filepath.Join(dir, p)); err != nil {
			return false
		}
	}
	return true
}

// LoadModel initializes the ONNX session, tokenizer, labels, and metadata
// from a bundle directory. Called once at startup; the returned Model is
// read-only afterwards.
func LoadModel(bundleDir string, seqLen int) (*Model, error) {
	if strings.TrimSpace(bundleDir) == "" {
		return nil, errors.New("bundleDir is empty")
	}
	if seqLen <= 0 {
		seqLen = defaultSeqLen
	}

	libPath := resolveSharedLibraryPath(bundleDir)
	if libPath == "" {
		return nil, fmt.Errorf("onnxruntime shared library not found; set ONNXRUNTIME_SHARED_LIBRARY_PATH or install the runtime")
	}
	ort.SetSharedLibraryPath(libPath)
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initialize onnxruntime: %w", err)
		}
	}

	modelPath := filepath.Join(bundleDir, modelFileName)
	if _, err := os.Stat(modelPath); err != nil {
		return nil, fmt.Errorf("model file missing at %s: %w", modelPath, err)
	}

	labels, err := loadLabels(filepath.Join(bundleDir, labelMapFileName))
	if err != nil {
		return nil, fmt.Errorf("load labels: %w", err)
	}
	fakeIdx, realIdx, err := classIndices(labels)
	if err != nil {
		return nil, err
	}

	meta, err := LoadMetadata(filepath.Join(bundleDir, metadataFileName))
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}

	tokenizer, err := LoadWordPieceTokenizer(filepath.Join(bundleDir, filepath.FromSlash(vocabRelPath)))
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}

	inputShape := ort.NewShape(1, int64(seqLen))
	inputIDs, err := ort.NewEmptyTensor[int64](inputShape)
	if err != nil {
		return nil, fmt.Errorf("allocate input_ids tensor: %w", err)
	}
	attnMask, err := ort.NewEmptyTensor[int64](inputShape)
	if err != nil {
		return nil, fmt.Errorf("allocate attention_mask tensor: %w", err)
	}
	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(labels))))
	if err != nil {
		return nil, fmt.Errorf("allocate output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		[]ort.Value{inputIDs, attnMask},
		[]ort.Value{output},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &Model{
		session:       session,
		tokenizer:     tokenizer,
		meta:          meta,
		fakeIdx:       fakeIdx,
		realIdx:       realIdx,
		seqLen:        seqLen,
		inputIDs:      inputIDs,
		attentionMask: attnMask,
		output:        output,
	}, nil
}

// Metadata returns the bundle's export-time metadata.
func (m *Model) Metadata() Metadata {
	if m == nil {
		return Metadata{}
	}
	return m.meta
}

// Predict runs inference on the normalized text and returns the two-class
// probability distribution (softmax over the logits).
func (m *Model) Predict(ctx context.Context, text string) (Prediction, error) {
	if m == nil || m.session == nil || m.tokenizer == nil {
		return Prediction{}, ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	cleaned := Normalize(text)
	inputIDs, attn := m.tokenizer.Encode(cleaned, m.seqLen)

	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.inputIDs.GetData(), inputIDs)
	copy(m.attentionMask.GetData(), attn)

	if err := m.session.Run(); err != nil {
		return Prediction{}, fmt.Errorf("%w: onnx run: %v", ErrUnavailable, err)
	}

	raw := m.output.GetData()
	if m.fakeIdx >= len(raw) || m.realIdx >= len(raw) {
		return Prediction{}, fmt.Errorf("%w: logits shorter than label map", ErrUnavailable)
	}

	probFake, probReal := softmax2(float64(raw[m.fakeIdx]), float64(raw[m.realIdx]))
	return Prediction{ProbFake: probFake, ProbReal: probReal}, nil
}

// softmax2 normalizes two logits into probabilities summing to 1.
func softmax2(a, b float64) (float64, float64) {
	max := a
	if b > max {
		max = b
	}
	ea := math.Exp(a - max)
	eb := math.Exp(b - max)
	sum := ea + eb
	return ea / sum, eb / sum
}

func classIndices(labels []string) (fakeIdx, realIdx int, err error) {
	fakeIdx, realIdx = -1, -1
	for i, l := range labels {
		switch strings.ToLower(strings.TrimSpace(l)) {
		case labelFake:
			fakeIdx = i
		case labelReal:
			realIdx = i
		}
	}
	if fakeIdx < 0 || realIdx < 0 {
		return 0, 0, fmt.Errorf("label map must name both %q and %q classes, got %v", labelFake, labelReal, labels)
	}
	return fakeIdx, realIdx, nil
}

func loadLabels(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil && len(arr) > 0 {
		return arr, nil
	}

	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	out := make([]string, len(m))
	for k, v := range m {
		idx, convErr := strconv.Atoi(k)
		if convErr != nil {
			return nil, fmt.Errorf("invalid label index %q: %w", k, convErr)
		}
		if idx < 0 || idx >= len(m) {
			return nil, fmt.Errorf("label index %d out of range", idx)
		}
		out[idx] = v
	}
	return out, nil
}

// resolveSharedLibraryPath locates the onnxruntime shared library.
// ONNXRUNTIME_SHARED_LIBRARY_PATH wins; otherwise common names/locations
// are probed, starting with the bundle itself.
func resolveSharedLibraryPath(bundleDir string) string {
	if env := strings.TrimSpace(os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")); env != "" {
		return env
	}

	names := []string{
		"libonnxruntime.dylib",
		"onnxruntime.dylib",
		"libonnxruntime.so",
		"onnxruntime.so",
		"onnxruntime.dll",
	}
	dirs := []string{
		bundleDir,
		filepath.Join(bundleDir, "lib"),
		".",
		"/opt/homebrew/lib",
		"/usr/local/lib",
		"/usr/lib",
	}

	for _, dir := range dirs {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}
