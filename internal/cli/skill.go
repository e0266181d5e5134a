package cli

import (
	"fmt"
	"strconv"

	"github.com/skillfolio-labs/skillfolio/internal/skill"
	"github.com/spf13/cobra"
)

var (
	skillAddKind  string
	skillAddLevel int
	skillAddDesc  string
)

func init() {
	skillAddCmd.Flags().StringVar(&skillAddKind, "kind", "", "Skill kind: soft or hard (required)")
	skillAddCmd.Flags().IntVar(&skillAddLevel, "level", 0, "Initial level (0-100)")
	skillAddCmd.Flags().StringVar(&skillAddDesc, "description", "", "Optional description")
	_ = skillAddCmd.MarkFlagRequired("kind")

	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillRemoveCmd)
	skillCmd.AddCommand(skillSetLevelCmd)
	skillCmd.AddCommand(skillShowCmd)
	rootCmd.AddCommand(skillCmd)
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skills within a category",
}

var skillAddCmd = &cobra.Command{
	Use:   "add <category> <name>",
	Short: "Add a skill to a category",
	Long: `Add a skill to a category. Soft skills render as a mana bar, hard
skills as an XP tree that grows through stages as the level rises.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := skill.ParseKind(skillAddKind)
		if !ok {
			return fmt.Errorf("unknown skill kind %q (use soft or hard)", skillAddKind)
		}
		mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		rep, err := mgr.AddSkill(args[0], kind, args[1], skillAddLevel, skillAddDesc)
		renderOutcome(cmd.OutOrStdout(), rep)
		return err
	},
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <category> <name>",
	Short: "Remove a skill from a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		rep, _ := mgr.RemoveSkill(args[0], args[1])
		renderOutcome(cmd.OutOrStdout(), rep)
		return nil
	},
}

var skillSetLevelCmd = &cobra.Command{
	Use:   "set-level <category> <name> <level>",
	Short: "Update a skill's level",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("parsing level %q: %w", args[2], err)
		}
		mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		rep, err := mgr.UpdateSkillLevel(args[0], args[1], level)
		renderOutcome(cmd.OutOrStdout(), rep)
		return err
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <category> <name>",
	Short: "Show one skill with its visual metaphor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		if _, err := categoryOrNotFound(mgr, args[0]); err != nil {
			return err
		}
		s := mgr.GetSkill(args[0], args[1])
		if s == nil {
			return &skill.NotFoundError{Kind: "skill", Name: args[1]}
		}
		renderSkill(cmd.OutOrStdout(), s, "")
		return nil
	},
}
