package pipeline

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardgen/pkg/config"
	"github.com/matzehuels/cardgen/pkg/errors"
	"github.com/matzehuels/cardgen/pkg/observability"
	"github.com/matzehuels/cardgen/pkg/random"
	"github.com/matzehuels/cardgen/pkg/shape"
)

func quietRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func countShapes(html string) int {
	return strings.Count(html, "<circle") + strings.Count(html, "<rect") + strings.Count(html, "<ellipse")
}

func TestGenerateRandomSingleShape(t *testing.T) {
	src := random.New(7)
	cfg, err := config.Random(src)
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	card, err := quietRunner().Generate(context.Background(), cfg.WithShapeCount(1), src)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if n := countShapes(card.HTML); n != 1 {
		t.Errorf("card has %d shapes, want 1\n%s", n, card.HTML)
	}
	if n := strings.Count(card.HTML, "<svg"); n != 1 {
		t.Errorf("card has %d svg elements, want 1", n)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<html>", "<body>", "</body>", "</html>"} {
		if !strings.Contains(card.HTML, want) {
			t.Errorf("card missing %q", want)
		}
	}
	if card.ShapeCount != 1 {
		t.Errorf("ShapeCount = %d, want 1", card.ShapeCount)
	}
}

func TestGenerateMatrixColors(t *testing.T) {
	card, err := quietRunner().Generate(context.Background(), config.Matrix(), random.New(1), WithRecords())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(card.Records) != 1000 {
		t.Fatalf("got %d records, want 1000", len(card.Records))
	}
	for i, p := range card.Records {
		if p.Kind != shape.Rectangle {
			t.Fatalf("shape %d is a %s, want rectangle", i, p.Kind)
		}
		if p.Fill.R != 0 || p.Fill.B != 0 {
			t.Fatalf("shape %d fill = %+v, want red and blue 0", i, p.Fill)
		}
		if p.Fill.G < 170 || p.Fill.Dominant() != 'g' {
			t.Fatalf("shape %d fill = %+v, want dominant green", i, p.Fill)
		}
	}
	if card.Stats.Rectangles != 1000 || card.Stats.Circles != 0 {
		t.Errorf("Stats = %+v", card.Stats)
	}
	if !strings.Contains(card.HTML, `style="background-color: black;"`) {
		t.Error("matrix card should have a black background")
	}
}

func TestGenerateThinkPadSize(t *testing.T) {
	card, err := quietRunner().Generate(context.Background(), config.ThinkPad(), random.New(3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, want := range []string{`width="1900"`, `height="1170"`, "<title>ThinkPad</title>"} {
		if !strings.Contains(card.HTML, want) {
			t.Errorf("card missing %q", want)
		}
	}
	if n := countShapes(card.HTML); n != 300 {
		t.Errorf("card has %d shapes, want 300", n)
	}
	if card.Records != nil {
		t.Error("Records should be nil without WithRecords")
	}
	if card.Filename != "thinkpad.html" {
		t.Errorf("Filename = %q", card.Filename)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	r := quietRunner()
	a, err := r.Generate(context.Background(), config.ThinkPad(), random.New(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Generate(context.Background(), config.ThinkPad(), random.New(99))
	if err != nil {
		t.Fatal(err)
	}
	if a.HTML != b.HTML {
		t.Error("same preset and seed should produce identical cards")
	}
	if a.ID != b.ID || a.ID != CardID("thinkpad", 99) {
		t.Errorf("IDs differ: %s %s", a.ID, b.ID)
	}
	if !strings.Contains(a.HTML, "card-"+a.ID) {
		t.Error("svg id should carry the card id")
	}
}

func TestRedrawMatchesGenerate(t *testing.T) {
	r := quietRunner()
	cfg := config.ThinkPad().WithShapeCount(40)
	orig, err := r.Generate(context.Background(), cfg, random.New(5), WithRecords())
	if err != nil {
		t.Fatal(err)
	}

	card, err := r.Redraw(context.Background(), cfg, orig.Records, WithRecords())
	if err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if card.ShapeCount != 40 || len(card.Records) != 40 {
		t.Errorf("ShapeCount = %d, records = %d, want 40", card.ShapeCount, len(card.Records))
	}
	if card.Seed != 0 || card.ID != RecordsID("thinkpad", orig.Records) {
		t.Errorf("Seed = %d, ID = %s", card.Seed, card.ID)
	}
	if !strings.Contains(card.HTML, "redrawn from 40 shapes") {
		t.Error("redrawn card should say where its shapes came from")
	}

	// Same shapes in the same order; only the ids and comments differ.
	shapesOf := func(html string) string {
		return html[strings.Index(html, `;">`):strings.Index(html, "</svg>")]
	}
	for _, c := range []*Card{orig, card} {
		if countShapes(c.HTML) != 40 {
			t.Fatalf("card has %d shapes", countShapes(c.HTML))
		}
	}
	if shapesOf(orig.HTML) != shapesOf(card.HTML) {
		t.Error("redrawn shapes differ from the originals")
	}
}

func TestRedrawInvalidRecord(t *testing.T) {
	records := []shape.Params{{Kind: shape.Rectangle, Width: 0, Height: 5, Opacity: 0.5}}
	_, err := quietRunner().Redraw(context.Background(), config.Matrix(), records)
	if !errors.Is(err, errors.ErrCodeInvalidShapeParameters) {
		t.Errorf("Redraw() error = %v, want INVALID_SHAPE_PARAMETERS", err)
	}
}

func TestGenerateLogsShapeLines(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	_, err := NewRunner(logger).Generate(context.Background(), config.Matrix().WithShapeCount(3), random.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "line="); n != 3 {
		t.Errorf("got %d shape lines, want 3\n%s", n, buf.String())
	}
}

func TestGenerateHexColor(t *testing.T) {
	card, err := quietRunner().Generate(context.Background(), config.ThinkPad().WithShapeCount(5), random.New(1), WithHexColor())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(card.HTML, "rgb(") {
		t.Error("WithHexColor should not produce rgb() fills")
	}
	if !strings.Contains(card.HTML, `fill="#`) {
		t.Error("WithHexColor should produce hex fills")
	}
}

func TestGenerateNilSource(t *testing.T) {
	card, err := quietRunner().Generate(context.Background(), config.ThinkPad().WithShapeCount(2), nil)
	if err != nil {
		t.Fatal(err)
	}
	if card.ID != CardID("thinkpad", card.Seed) {
		t.Error("card id should match the recorded seed")
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	cfg := config.ThinkPad()
	cfg.RadiusRange = random.Range{Min: 50, Max: 10}

	_, err := quietRunner().Generate(context.Background(), cfg, random.New(1))
	if !errors.Is(err, errors.ErrCodeInvalidRange) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidRange)
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietRunner().Generate(ctx, config.Matrix(), random.New(1))
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerateHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCardHooks(hooks)
	defer observability.Reset()

	r := quietRunner()
	card, err := r.Generate(context.Background(), config.ThinkPad().WithShapeCount(4), random.New(5))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.WriteCard(context.Background(), card, t.TempDir()); err != nil {
		t.Fatal(err)
	}

	if hooks.started != 1 || hooks.completed != 1 || hooks.written != 1 {
		t.Errorf("hooks = %+v, want one of each", hooks)
	}
	if hooks.drawn != 4 {
		t.Errorf("completed with %d shapes, want 4", hooks.drawn)
	}
}

func TestGenerateAllKeepsJobOrder(t *testing.T) {
	jobs := []Job{
		{Config: config.ThinkPad().WithShapeCount(3), Source: random.New(1)},
		{Config: config.Matrix().WithShapeCount(3), Source: random.New(1)},
	}
	cards, err := quietRunner().GenerateAll(context.Background(), jobs)
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(cards) != 2 || cards[0].Name != "thinkpad" || cards[1].Name != "matrix" {
		t.Fatalf("unexpected cards: %+v", cards)
	}

	single, err := quietRunner().Generate(context.Background(), jobs[1].Config, random.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if single.HTML != cards[1].HTML {
		t.Error("concurrent generation should match sequential generation")
	}
}

func TestGenerateAllFailure(t *testing.T) {
	bad := config.ThinkPad()
	bad.Width = 0
	jobs := []Job{
		{Config: config.ThinkPad().WithShapeCount(1), Source: random.New(1)},
		{Config: bad, Source: random.New(1)},
	}
	if _, err := quietRunner().GenerateAll(context.Background(), jobs); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestWriteCard(t *testing.T) {
	dir := t.TempDir()
	r := quietRunner()
	card, err := r.Generate(context.Background(), config.ThinkPad().WithShapeCount(1), random.New(1))
	if err != nil {
		t.Fatal(err)
	}

	path, err := r.WriteCard(context.Background(), card, dir)
	if err != nil {
		t.Fatalf("WriteCard: %v", err)
	}
	if path != filepath.Join(dir, "thinkpad.html") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != card.HTML {
		t.Error("written file differs from card HTML")
	}
}

func TestWriteCardErrors(t *testing.T) {
	r := quietRunner()

	_, err := r.WriteCard(context.Background(), &Card{Filename: "../escape.html"}, t.TempDir())
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("path traversal: error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}

	_, err = r.WriteCard(context.Background(), &Card{Filename: "x.html"}, filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("missing dir: error = %v, want %s", err, errors.ErrCodeIO)
	}
}

func TestCardID(t *testing.T) {
	if CardID("matrix", 1) == CardID("matrix", 2) {
		t.Error("different seeds should give different ids")
	}
	if CardID("matrix", 1) == CardID("thinkpad", 1) {
		t.Error("different presets should give different ids")
	}
	if CardID("matrix", 1) != CardID("matrix", 1) {
		t.Error("ids should be stable")
	}
}

func TestStatsCount(t *testing.T) {
	s := Stats{Circles: 1, Rectangles: 2, Ellipses: 3}
	for k, want := range map[shape.Kind]int{shape.Circle: 1, shape.Rectangle: 2, shape.Ellipse: 3} {
		if got := s.Count(k); got != want {
			t.Errorf("Count(%s) = %d, want %d", k, got, want)
		}
	}
}

type countingHooks struct {
	observability.NoopCardHooks
	mu                          sync.Mutex
	started, completed, written int
	drawn                       int
}

func (h *countingHooks) OnCardStart(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.started++
}

func (h *countingHooks) OnCardComplete(_ context.Context, _ string, shapes int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
	h.drawn = shapes
}

func (h *countingHooks) OnCardWritten(context.Context, string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.written++
}
