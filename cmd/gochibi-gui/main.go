package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gochibi/internal/config"
	"github.com/philipparndt/gochibi/internal/logger"
	"github.com/philipparndt/gochibi/pkg/analysis"
	"github.com/philipparndt/gochibi/pkg/archive"
	"github.com/philipparndt/gochibi/pkg/chibi"
	"github.com/philipparndt/gochibi/pkg/export"
	"github.com/philipparndt/gochibi/pkg/viewer"
	"github.com/philipparndt/gochibi/version"
	"go.uber.org/zap"
)

// toleranceFloor is the lowest tolerance the slider offers at any scale
const toleranceFloor = -0.2

type App struct {
	window   fyne.Window
	cfg      *config.Config
	parts    chibi.PartCollection
	renderer *viewer.ModelRenderer
	controls *Controls
}

// Controls holds the panel widgets that feed the configuration
type Controls struct {
	characterType *widget.Select
	gender        *widget.Select
	scale         *widget.Slider
	scaleLabel    *widget.Label
	tolerance     *widget.Slider
	toleranceLbl  *widget.Label
	hair          *widget.Select
	clothing      *widget.Select
	format        *widget.Select
	asciiSTL      *widget.Check
	zip           *widget.Check
	outDirLabel   *widget.Label
	statusLabel   *widget.Label
	partLabel     *widget.Label
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cfg = config.Default()
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	defer logger.Close()

	a := app.New()
	w := a.NewWindow("gochibi " + version.GetVersion() + " - Chibi Figurine Generator")

	appInstance := &App{
		window: w,
		cfg:    cfg,
	}
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	c := &Controls{
		characterType: widget.NewSelect(chibi.CharacterTypes, nil),
		gender:        widget.NewSelect(chibi.Genders, nil),
		scale:         widget.NewSlider(0.5, 2.0),
		scaleLabel:    widget.NewLabel(""),
		tolerance:     widget.NewSlider(toleranceFloor, 0.0),
		toleranceLbl:  widget.NewLabel(""),
		hair:          widget.NewSelect(hairOptions(), nil),
		clothing:      widget.NewSelect(clothingOptions(), nil),
		format:        widget.NewSelect(formatOptions(), nil),
		asciiSTL:      widget.NewCheck("ASCII STL", nil),
		zip:           widget.NewCheck("Also create a zip", nil),
		outDirLabel:   widget.NewLabel(""),
		statusLabel:   widget.NewLabel("Press Generate to build the model"),
		partLabel:     widget.NewLabel("Click a part in the preview"),
	}
	a.controls = c

	c.scale.Step = 0.1
	c.tolerance.Step = 0.01
	c.scale.OnChanged = func(v float64) {
		c.scaleLabel.SetText(fmt.Sprintf("Scale: %.1f", v))
		c.limitTolerance(v)
	}
	c.tolerance.OnChanged = func(v float64) {
		c.toleranceLbl.SetText(fmt.Sprintf("Tolerance: %.2f (min %.2f)", v, c.tolerance.Min))
	}
	c.partLabel.Wrapping = fyne.TextWrapWord
	c.statusLabel.Wrapping = fyne.TextWrapWord

	a.applyConfigToControls()

	a.renderer = viewer.NewModelRenderer(nil)
	a.renderer.SetOnPartSelect(a.showPart)

	generateButton := widget.NewButton("Generate Model", func() {
		a.generate()
	})
	generateButton.Importance = widget.HighImportance

	exportButton := widget.NewButton("Export Parts", func() {
		a.exportParts()
	})

	folderButton := widget.NewButton("Choose Folder", func() {
		a.showFolderDialog()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Click a part to measure it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Character:"),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem("Type", c.characterType),
			widget.NewFormItem("Gender", c.gender),
			widget.NewFormItem("Hair", c.hair),
			widget.NewFormItem("Clothing", c.clothing),
		),
		c.scaleLabel,
		c.scale,
		c.toleranceLbl,
		c.tolerance,
		generateButton,
		widget.NewSeparator(),
		widget.NewLabel("Export:"),
		widget.NewForm(widget.NewFormItem("Format", c.format)),
		c.asciiSTL,
		c.zip,
		c.outDirLabel,
		folderButton,
		exportButton,
		widget.NewSeparator(),
		c.statusLabel,
		widget.NewSeparator(),
		c.partLabel,
		widget.NewSeparator(),
		instructions,
	)

	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(
		nil,
		nil,
		panelScroll,
		nil,
		a.renderer,
	)

	a.window.SetContent(content)
}

func (a *App) applyConfigToControls() {
	c, m := a.controls, a.cfg.Model

	c.characterType.SetSelected(m.CharacterType)
	c.gender.SetSelected(m.Gender)
	hair, err := chibi.ParseHairStyle(string(m.HairStyle))
	if err != nil {
		hair = chibi.HairShort
	}
	c.hair.SetSelected(string(hair))
	clothing := m.Clothing
	if clothing == "" {
		clothing = chibi.ClothingNone
	}
	c.clothing.SetSelected(string(clothing))
	c.scale.SetValue(m.Scale)
	c.tolerance.SetValue(m.Tolerance)
	c.scale.OnChanged(c.scale.Value)
	c.tolerance.OnChanged(c.tolerance.Value)

	c.format.SetSelected(string(export.FormatSTL))
	if f, err := export.ParseFormat(a.cfg.Export.Format); err == nil {
		c.format.SetSelected(string(f))
	}
	c.asciiSTL.SetChecked(a.cfg.Export.ASCIISTL)
	c.zip.SetChecked(a.cfg.Export.Zip)
	a.setOutDir(a.cfg.Export.Dir)
}

// readControls copies the widget values into a fresh configuration
func (a *App) readControls() chibi.Configuration {
	c := a.controls
	return chibi.Configuration{
		CharacterType: c.characterType.Selected,
		Gender:        c.gender.Selected,
		Scale:         c.scale.Value,
		Tolerance:     c.tolerance.Value,
		HairStyle:     chibi.HairStyle(c.hair.Selected),
		Clothing:      chibi.Clothing(c.clothing.Selected),
	}
}

func (a *App) generate() bool {
	model := a.readControls()

	parts, err := chibi.GenerateFullModel(model)
	if err != nil {
		logger.Log.Warn("Generation failed", zap.Error(err))
		dialog.ShowError(err, a.window)
		return false
	}

	a.cfg.Model = model
	a.parts = parts
	a.renderer.SetParts(parts)
	a.controls.partLabel.SetText("Click a part in the preview")

	size := parts.BoundingBox().Size()
	a.controls.statusLabel.SetText(fmt.Sprintf(
		"Generated %d parts\n%s\nSize: %.2f x %.2f x %.2f",
		len(parts), model, size.X, size.Y, size.Z))
	logger.Log.Info("Generated model", zap.Stringer("config", model), zap.Int("parts", len(parts)))
	return true
}

func (a *App) exportParts() {
	// export what the controls show, not a stale preview
	if !a.generate() {
		return
	}

	c := a.controls
	a.cfg.Export.Format = c.format.Selected
	a.cfg.Export.ASCIISTL = c.asciiSTL.Checked
	a.cfg.Export.Zip = c.zip.Checked

	opts := []export.Option{export.WithLogger(logger.Log)}
	if a.cfg.Export.ASCIISTL {
		opts = append(opts, export.WithASCIISTL())
	}

	files, err := export.New(opts...).ExportParts(context.Background(), a.parts, a.cfg.Export.Dir, a.cfg.Export.Format)
	if err != nil {
		dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
		return
	}

	msg := fmt.Sprintf("Exported %d of %d parts to %s", len(files), len(a.parts), a.cfg.Export.Dir)
	if a.cfg.Export.Zip {
		zipPath := a.cfg.Export.ZipPath()
		if err := archive.Zip(zipPath, files); err != nil {
			dialog.ShowError(fmt.Errorf("packaging failed: %w", err), a.window)
			return
		}
		msg += "\nArchive: " + zipPath
	}
	c.statusLabel.SetText(msg)

	if len(files) < len(a.parts) {
		dialog.ShowInformation("Export incomplete",
			fmt.Sprintf("%d parts could not be written; see the log for details.", len(a.parts)-len(files)),
			a.window)
	}
}

func (a *App) showFolderDialog() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if uri == nil {
			return
		}
		a.setOutDir(filepath.Join(uri.Path(), "chibi_parts"))
	}, a.window)
}

func (a *App) setOutDir(dir string) {
	a.cfg.Export.Dir = dir
	a.controls.outDirLabel.SetText("Folder: " + dir)
}

func (a *App) showPart(name string) {
	m := a.parts.Mesh(name)
	if m == nil {
		return
	}
	r := analysis.AnalyzeMesh(name, m)
	a.controls.partLabel.SetText(fmt.Sprintf(
		"Part: %s\nTriangles: %d\nVolume: %.4f\nSurface Area: %.4f\n\nDimensions:\n  X: %.4f\n  Y: %.4f\n  Z: %.4f",
		r.Name, r.TriangleCount, r.Volume, r.SurfaceArea,
		r.Dimensions.X, r.Dimensions.Y, r.Dimensions.Z))
}

// limitTolerance keeps the tolerance slider inside the range where the
// connector insert still has a positive radius at scale
func (c *Controls) limitTolerance(scale float64) {
	c.tolerance.Min = math.Max(toleranceFloor, chibi.MinTolerance(scale, c.tolerance.Step))
	if c.tolerance.Value < c.tolerance.Min {
		c.tolerance.SetValue(c.tolerance.Min)
		return
	}
	c.tolerance.Refresh()
	if c.tolerance.OnChanged != nil {
		c.tolerance.OnChanged(c.tolerance.Value)
	}
}

func hairOptions() []string {
	opts := make([]string, len(chibi.HairStyles))
	for i, h := range chibi.HairStyles {
		opts[i] = string(h)
	}
	return opts
}

func formatOptions() []string {
	opts := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		opts[i] = string(f)
	}
	return opts
}

func clothingOptions() []string {
	opts := make([]string, len(chibi.Clothings))
	for i, c := range chibi.Clothings {
		opts[i] = string(c)
	}
	return opts
}
