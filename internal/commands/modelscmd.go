package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/textagent/internal/models"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the supported model presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels()
	},
}

func runModels() error {
	defaultName := getModelName()

	nameStyle := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	fmt.Println("Available models:")
	for _, p := range models.AllPresets() {
		marker := " "
		if p.Name == defaultName || p.ID == defaultName {
			marker = "*"
		}
		fmt.Printf("%s %s  %s %s\n",
			marker,
			nameStyle.Render(p.Name),
			p.DisplayName,
			dimStyle.Render("("+p.ID+")"),
		)
	}
	fmt.Println()
	fmt.Println(dimStyle.Render("* default — change with 'textagent config set model <name>'"))

	return nil
}
