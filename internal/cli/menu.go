package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive mode — guided workflow",
		Long:  "Launch an interactive menu to walk through pack, unpack, list, and comment step by step.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var action string

			err := huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Pack files into a .slm archive", "pack"),
					huh.NewOption("Unpack a .slm archive", "unpack"),
					huh.NewOption("List the contents of a .slm archive", "list"),
					huh.NewOption("View a .slm archive's comment", "comment"),
					huh.NewOption("Exit", "exit"),
				).
				Value(&action).
				Run()
			if err != nil {
				return err
			}

			switch action {
			case "pack":
				return runPackMenu()
			case "unpack":
				return runUnpackMenu()
			case "list":
				return runListMenu()
			case "comment":
				return runCommentMenu()
			case "exit":
				fmt.Println("Goodbye.")
				return nil
			}
			return nil
		},
	}
	return cmd
}

func runPackMenu() error {
	var (
		inputs  string
		output  string
		algo    string
		comment string
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Files or directories to pack").
				Placeholder("/path/to/file_or_dir").
				Description("A single path; use the pack subcommand directly for multiple").
				Value(&inputs),
			huh.NewInput().
				Title("Output archive path").
				Placeholder("archive.slm").
				Value(&output),
			huh.NewSelect[string]().
				Title("Compression algorithm").
				Options(
					huh.NewOption("DEFLATE (default)", "deflate"),
					huh.NewOption("LZMA", "lzma"),
				).
				Value(&algo),
			huh.NewInput().
				Title("Comment (optional)").
				Placeholder("stored encrypted in the header").
				Value(&comment),
		),
	).Run()
	if err != nil {
		return err
	}

	args := []string{"pack", inputs, "--output", output}
	if algo != "" {
		args = append(args, "--algo", algo)
	}
	if comment != "" {
		args = append(args, "--comment", comment)
	}

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func runUnpackMenu() error {
	var (
		archivePath string
		targetDir   string
		overwrite   bool
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Archive to extract").
				Placeholder("/path/to/archive.slm").
				Value(&archivePath),
			huh.NewInput().
				Title("Extraction target directory (leave blank to use the archive's own default)").
				Placeholder("/path/to/outdir").
				Value(&targetDir),
			huh.NewConfirm().
				Title("Allow overwriting existing files?").
				Value(&overwrite),
		),
	).Run()
	if err != nil {
		return err
	}

	args := []string{"unpack", archivePath}
	if targetDir != "" {
		args = append(args, "--outdir", targetDir)
	}
	if overwrite {
		args = append(args, "--overwrite")
	}

	root := NewRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func runListMenu() error {
	var archivePath string

	err := huh.NewInput().
		Title("Archive to list").
		Placeholder("/path/to/archive.slm").
		Value(&archivePath).
		Run()
	if err != nil {
		return err
	}

	root := NewRootCmd()
	root.SetArgs([]string{"list", archivePath})
	return root.Execute()
}

func runCommentMenu() error {
	var archivePath string

	err := huh.NewInput().
		Title("Archive whose comment you want to view").
		Placeholder("/path/to/archive.slm").
		Value(&archivePath).
		Run()
	if err != nil {
		return err
	}

	root := NewRootCmd()
	root.SetArgs([]string{"comment", archivePath})
	return root.Execute()
}
