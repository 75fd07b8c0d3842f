package cmd

import (
	"fmt"
	"log"

	"github.com/da-luce/cvlint/internal/criteria"
	"github.com/da-luce/cvlint/internal/dictionary"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

const promptBack = "back"

var listCriteriaCmd = &cobra.Command{
	Use:   "list-criteria",
	Short: "List all registered validation criteria",
	Run: func(cmd *cobra.Command, _ []string) {
		listCriteria(cmd)
	},
}

func init() {
	rootCmd.AddCommand(listCriteriaCmd)

	listCriteriaCmd.Flags().BoolP("interactive", "i", false, "pick criteria one by one and inspect them")
}

func listCriteria(cmd *cobra.Command) {
	config, err := getConfig()
	if err != nil {
		log.Fatalf("getting a config: %s", err)
	}

	registry := criteria.NewRegistry(config.Rules, dictionary.New(customWords(config)))

	if cmd.Flag("interactive").Value.String() == "true" {
		if err := inspectCriteria(registry); err != nil {
			log.Fatalf("inspecting criteria: %s", err)
		}
		return
	}

	for _, c := range registry.List() {
		fmt.Printf("%-22s %-10s %5.1f  %s\n", c.Name(), c.Category(), c.Weight(), c.Description())
	}
	fmt.Printf("\nTotal weight: %.1f\n", registry.TotalWeight())
}

// inspectCriteria loops a selection prompt until the user picks back.
func inspectCriteria(registry *criteria.Registry) error {
	all := registry.List()

	items := make([]string, 0, len(all)+1)
	for _, c := range all {
		items = append(items, c.Name())
	}
	items = append(items, promptBack)

	for {
		prompt := promptui.Select{
			Label: "Choose a criterion and press ENTER",
			Items: items,
		}

		_, selected, err := prompt.Run()
		if err != nil {
			return err
		}

		if selected == promptBack {
			return nil
		}

		for _, c := range all {
			if c.Name() == selected {
				fmt.Printf("\n%s\n  category: %s\n  weight:   %.1f\n  rule:     %s\n\n",
					c.Name(), c.Category(), c.Weight(), c.Description())
			}
		}
	}
}
