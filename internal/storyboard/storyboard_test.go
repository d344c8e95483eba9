package storyboard

import (
	"os"
	"strings"
	"testing"

	"github.com/odedgol/product-review-automation/internal/config"
	"github.com/odedgol/product-review-automation/internal/script"
)

var testVideo = config.VideoConfig{Width: 1920, Height: 1080, FPS: 30}

func render(t *testing.T, p Params) string {
	t.Helper()
	r := NewRenderer(t.TempDir(), testVideo)
	if p.Filename == "" {
		p.Filename = "storyboard.md"
	}
	path, err := r.Render(p)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRender_EmptySectionsProducesCompleteDocument(t *testing.T) {
	doc := render(t, Params{
		ProductName: "Test Bottle",
		Sections:    script.NewSections(),
		Score:       8.5,
	})

	for i := 1; i <= 8; i++ {
		if !strings.Contains(doc, "## Scene "+string(rune('0'+i))) {
			t.Errorf("missing scene %d", i)
		}
	}
	for _, placeholder := range []string{"[Hook]", "[Intro]", "[Features]", "[Pros script]", "[Cons script]", "[Verdict]", "[CTA]"} {
		if !strings.Contains(doc, placeholder) {
			t.Errorf("missing placeholder %q", placeholder)
		}
	}
	if !strings.Contains(doc, "Score: 8.5/10") {
		t.Error("missing score line")
	}
	if !strings.Contains(doc, "[Add product images]") {
		t.Error("missing image placeholder")
	}
}

func TestRender_NilSections(t *testing.T) {
	doc := render(t, Params{ProductName: "Test", Score: 7})
	if !strings.Contains(doc, "[Hook]") {
		t.Error("nil sections should render placeholders")
	}
}

func TestRender_SectionsSubstituted(t *testing.T) {
	sections := script.ParseSections("[HOOK] the hook text\n[VERDICT] the verdict text")
	doc := render(t, Params{ProductName: "Test", Sections: sections, Score: 9})

	if !strings.Contains(doc, "the hook text") {
		t.Error("hook text not substituted")
	}
	if !strings.Contains(doc, "the verdict text") {
		t.Error("verdict text not substituted")
	}
	if strings.Contains(doc, "[Hook]") {
		t.Error("placeholder rendered despite section being present")
	}
}

func TestRender_CapsListsAtFive(t *testing.T) {
	images := []string{"i1", "i2", "i3", "i4", "i5", "i6", "i7"}
	pros := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
	cons := []string{"c1", "c2", "c3", "c4", "c5", "c6"}

	doc := render(t, Params{
		ProductName: "Test",
		Images:      images,
		Sections:    script.NewSections(),
		Pros:        pros,
		Cons:        cons,
		Score:       8,
	})

	if strings.Contains(doc, "i6") || strings.Contains(doc, "6. ") {
		t.Error("more than five images listed")
	}
	if strings.Contains(doc, "✓ p6") {
		t.Error("more than five pros listed")
	}
	if strings.Contains(doc, "✗ c6") {
		t.Error("more than five cons listed")
	}
	if !strings.Contains(doc, "  5. i5") {
		t.Error("fifth image missing")
	}
}

func TestRender_Overwrites(t *testing.T) {
	r := NewRenderer(t.TempDir(), testVideo)

	first, err := r.Render(Params{ProductName: "First", Filename: "s.md", Sections: script.NewSections()})
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Render(Params{ProductName: "Second", Filename: "s.md", Sections: script.NewSections()})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("paths differ: %q vs %q", first, second)
	}

	data, _ := os.ReadFile(second)
	if !strings.Contains(string(data), "Second") || strings.Contains(string(data), "First") {
		t.Error("file was not overwritten")
	}
}
