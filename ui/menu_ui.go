package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/mossfell/catdash/components"
	cfg "github.com/mossfell/catdash/config"
	"github.com/mossfell/catdash/systems"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the title screen
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// Callbacks
	OnPlay     func()
	OnSettings func()
	OnQuit     func()

	// Widget references for updates
	optionButtons  []*widget.Button
	highScoreLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	highScore   int
	initialized bool
}

// NewMenuUI creates the title screen UI with ebitenui
func NewMenuUI(menu *components.MenuData, highScore int, onPlay, onSettings, onQuit func()) *MenuUI {
	mui := &MenuUI{
		Menu:       menu,
		OnPlay:     onPlay,
		OnSettings: onSettings,
		OnQuit:     onQuit,
		highScore:  highScore,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	titleSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	mui.titleFace = &text.GoTextFace{
		Source: titleSource,
		Size:   44,
	}
	mui.normalFace = &text.GoTextFace{
		Source: regularSource,
		Size:   18,
	}
	mui.smallFace = &text.GoTextFace{
		Source: regularSource,
		Size:   12,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout; no background so the sky and
	// clouds stay visible behind the menu
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Title
	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.TitleText, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	// High score line
	mui.highScoreLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Best: %d", mui.highScore), &mui.normalFace, &widget.LabelColor{
			Idle: cfg.Menu.HighScoreColor,
		}),
	)
	contentContainer.AddChild(mui.highScoreLabel)

	// Menu buttons
	buttonsContainer := mui.buildButtonsContainer()
	contentContainer.AddChild(buttonsContainer)

	// Instruction lines
	for _, line := range cfg.Menu.Instructions {
		instrLabel := widget.NewLabel(
			widget.LabelOpts.Text(line, &mui.smallFace, &widget.LabelColor{
				Idle: cfg.Menu.InstructionColor,
			}),
		)
		contentContainer.AddChild(instrLabel)
	}

	rootContainer.AddChild(contentContainer)

	// Create UI
	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (mui *MenuUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	mui.optionButtons = make([]*widget.Button, len(mui.Menu.VisibleOptions))

	for i, option := range mui.Menu.VisibleOptions {
		idx := i // Capture for closure
		opt := option
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(180, 32),
			),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(systems.MenuOptionLabel(opt), &mui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				mui.Menu.SelectedIndex = idx
				mui.activate(opt)
			}),
		)
		mui.optionButtons[i] = button
		container.AddChild(button)
	}

	return container
}

// activate invokes the callback for a chosen option
func (mui *MenuUI) activate(option components.MainMenuOption) {
	switch option {
	case components.MainMenuPlay:
		if mui.OnPlay != nil {
			mui.OnPlay()
		}
	case components.MainMenuSettings:
		if mui.OnSettings != nil {
			mui.OnSettings()
		}
	case components.MainMenuQuit:
		if mui.OnQuit != nil {
			mui.OnQuit()
		}
	}
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 200})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 220})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 220})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 200})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI syncs widget text with the menu state, marking the
// keyboard-selected option
func (mui *MenuUI) UpdateUI() {
	if mui.highScoreLabel != nil {
		mui.highScoreLabel.Label = fmt.Sprintf("Best: %d", mui.highScore)
	}

	for i, button := range mui.optionButtons {
		if button == nil || i >= len(mui.Menu.VisibleOptions) {
			continue
		}
		textWidget := button.Text()
		if textWidget == nil {
			continue
		}
		label := systems.MenuOptionLabel(mui.Menu.VisibleOptions[i])
		if i == mui.Menu.SelectedIndex {
			textWidget.Label = "> " + label + " <"
		} else {
			textWidget.Label = label
		}
	}
}

// SetHighScore updates the best score line
func (mui *MenuUI) SetHighScore(score int) {
	mui.highScore = score
	mui.UpdateUI()
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !mui.initialized {
		mui.initialized = true
		mui.UpdateUI()
	}
}
