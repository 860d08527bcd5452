package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tools4video/bealert/internal/converter"
	"github.com/tools4video/bealert/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	stateFilePicker state = iota
	stateOutputPath
	stateConverting
	stateComplete
	stateError
)

type Model struct {
	state        state
	filepicker   filepicker.Model
	selectedFile string
	outputInput  textinput.Model
	result       *types.ConversionResult
	err          error
	width        int
	height       int
	progress     progress.Model
	progressChan chan float64
	resultChan   chan conversionResultMsg
}

type fileValidatedMsg struct {
	path string
	err  error
}

type conversionResultMsg struct {
	result *types.ConversionResult
	err    error
}

type progressMsg float64

type waitForProgressMsg struct{}

func InitialModel() Model {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx"}
	fp.CurrentDirectory, _ = os.Getwd()

	// Set filepicker colors to match theme
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000"))
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB000")).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	ti := textinput.New()
	ti.Placeholder = "output.csv"
	ti.Prompt = "> "

	prog := progress.New(progress.WithGradient("#FFB000", "#FFD166"))

	return Model{
		state:       stateFilePicker,
		filepicker:  fp,
		outputInput: ti,
		progress:    prog,
	}
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Leave room for title, subtitle, help text, and padding
		height := msg.Height - 14
		if height < 5 {
			height = 5
		}

		m.filepicker.SetHeight(height)

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateFilePicker:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateOutputPath:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				return m.reset(), nil
			case "enter":
				if strings.TrimSpace(m.outputInput.Value()) != "" {
					m.state = stateConverting
					return m.convertFile()
				}
			default:
				var cmd tea.Cmd
				m.outputInput, cmd = m.outputInput.Update(msg)
				return m, cmd
			}

		case stateComplete:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			case "r":
				return m.reset(), nil
			}

		case stateError:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "enter", "esc", "r":
				return m.reset(), nil
			}
		}

	case fileValidatedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}

		m.selectedFile = msg.path
		m.outputInput.SetValue(suggestOutputName(msg.path))
		m.outputInput.CursorEnd()
		m.state = stateOutputPath
		return m, m.outputInput.Focus()

	case conversionResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.state = stateComplete
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateConverting {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil

	case waitForProgressMsg:
		return m, waitForProgress(m.progressChan, m.resultChan)
	}

	// Handle filepicker updates
	if m.state == stateFilePicker {
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			return m, validateFile(path)
		}

		return m, cmd
	}

	return m, nil
}

// reset returns to the file picker, dropping everything from the previous run.
func (m Model) reset() Model {
	m.state = stateFilePicker
	m.selectedFile = ""
	m.result = nil
	m.err = nil
	m.outputInput.Blur()
	m.outputInput.SetValue("")
	return m
}

// validateFile checks the workbook's columns before a destination is chosen.
func validateFile(path string) tea.Cmd {
	return func() tea.Msg {
		return fileValidatedMsg{path: path, err: converter.ValidateSchema(path)}
	}
}

// suggestOutputName derives the default destination from the input filename:
// same directory, same stem, .csv extension.
func suggestOutputName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
}

func (m Model) convertFile() (Model, tea.Cmd) {
	m.progressChan = make(chan float64, 100)
	m.resultChan = make(chan conversionResultMsg, 1)

	cmd := tea.Batch(
		func() tea.Msg {
			// Capture for the goroutine
			progressChan := m.progressChan
			resultChan := m.resultChan
			inputFile := m.selectedFile
			outputFile := strings.TrimSpace(m.outputInput.Value())

			go func() {
				result, err := converter.Convert(inputFile, outputFile, progressChan)

				resultChan <- conversionResultMsg{result: result, err: err}

				close(progressChan)
				close(resultChan)
			}()

			return waitForProgressMsg{}
		},
		waitForProgress(m.progressChan, m.resultChan),
		m.progress.Init(), // Start progress bar animation
	)

	return m, cmd
}

func waitForProgress(progressChan chan float64, resultChan chan conversionResultMsg) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			// Progress channel closed, check result
			res, ok := <-resultChan
			if ok {
				return conversionResultMsg(res)
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case stateFilePicker:
		return m.viewFilePicker()
	case stateOutputPath:
		return m.viewOutputPath()
	case stateConverting:
		return m.viewConverting()
	case stateComplete:
		return m.viewComplete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📢 BE-Alert Contact Converter"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Select an XLSX contact export to convert"))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewOutputPath() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📢 Choose Destination"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("File: %s", filepath.Base(m.selectedFile))))
	s.WriteString("\n\n")
	s.WriteString(SuccessStyle.Render("✓ XLSX selected and columns OK."))
	s.WriteString("\n\n")
	s.WriteString(LabelStyle.Render("Save CSV as:"))
	s.WriteString("\n")
	s.WriteString(m.outputInput.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("enter: convert • esc: pick another file • ctrl+c: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewConverting() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📢 Converting..."))
	s.WriteString("\n\n")
	s.WriteString("Writing BE-Alert contact records...")
	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ CSV saved."))
	s.WriteString("\n\n")

	// Truncate paths if they're too long
	maxPathLen := m.width - 20
	if maxPathLen < 30 {
		maxPathLen = 30
	}

	inputPath := m.result.InputFile
	if len(inputPath) > maxPathLen {
		inputPath = "..." + inputPath[len(inputPath)-maxPathLen+3:]
	}

	outputPath := m.result.OutputFile
	if len(outputPath) > maxPathLen {
		outputPath = "..." + outputPath[len(outputPath)-maxPathLen+3:]
	}

	s.WriteString(fmt.Sprintf("Input:  %s\n", inputPath))
	s.WriteString(SuccessStyle.Render(fmt.Sprintf("Output: %s\n", outputPath)))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Contacts written: %d\n", m.result.RowsProcessed))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("r: convert another • any other key: exit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("enter: back to file picker • q: quit"))

	return BoxStyle.Render(s.String())
}
