package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verdanthealth/trackrules/internal/core/db"
	"github.com/verdanthealth/trackrules/internal/engine"
	"github.com/verdanthealth/trackrules/internal/mapper"
	"github.com/verdanthealth/trackrules/internal/store"
	"github.com/verdanthealth/trackrules/internal/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Translate program rules to engine form and print as JSON",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("program", "", "restrict export to one program UID")
	exportCmd.Flags().Bool("pretty", false, "indent JSON output")
}

// Closed variant sets serialize behind an explicit kind discriminator so
// consumers can decode without probing field shapes.
type actionExport struct {
	Kind   engine.ActionKind `json:"kind"`
	Action engine.Action     `json:"action"`
}

type variableExport struct {
	Kind     engine.VariableKind `json:"kind"`
	Variable engine.Variable     `json:"variable"`
}

type ruleExport struct {
	Name         string         `json:"name"`
	ProgramStage string         `json:"programStage"`
	Priority     *int           `json:"priority,omitempty"`
	Condition    string         `json:"condition"`
	Actions      []actionExport `json:"actions"`
}

type exportDocument struct {
	Rules     []ruleExport      `json:"rules"`
	Variables []variableExport  `json:"variables"`
	ItemStore map[string]string `json:"itemStore"`
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	queries, err := db.LoadQueries(database)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}

	sqlStore := store.NewSQLStore(queries)
	m := mapper.New(sqlStore, sqlStore, sqlStore, sqlStore, store.DescriptionsFor(cfg.Locale))

	program, _ := cmd.Flags().GetString("program")

	var rules []engine.Rule
	var variables []engine.Variable
	var prvs []types.ProgramRuleVariable

	if program != "" {
		uid := types.UID(program)
		if rules, err = m.MapRulesForProgram(uid); err != nil {
			return fmt.Errorf("failed to map rules: %w", err)
		}
		if variables, err = m.MapVariablesForProgram(uid); err != nil {
			return fmt.Errorf("failed to map variables: %w", err)
		}
		if prvs, err = sqlStore.VariablesForProgram(uid); err != nil {
			return fmt.Errorf("failed to load variables: %w", err)
		}
	} else {
		if rules, err = m.MapRules(); err != nil {
			return fmt.Errorf("failed to map rules: %w", err)
		}
		if variables, err = m.MapVariables(); err != nil {
			return fmt.Errorf("failed to map variables: %w", err)
		}
		if prvs, err = sqlStore.AllVariables(); err != nil {
			return fmt.Errorf("failed to load variables: %w", err)
		}
	}

	itemStore, err := m.BuildItemStore(prvs)
	if err != nil {
		return fmt.Errorf("failed to build item store: %w", err)
	}

	doc := exportDocument{
		Rules:     make([]ruleExport, 0, len(rules)),
		Variables: make([]variableExport, 0, len(variables)),
		ItemStore: itemStore,
	}
	for _, r := range rules {
		doc.Rules = append(doc.Rules, toRuleExport(r))
	}
	for _, v := range variables {
		doc.Variables = append(doc.Variables, variableExport{Kind: v.Kind(), Variable: v})
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}

func toRuleExport(r engine.Rule) ruleExport {
	out := ruleExport{
		Name:         r.Name,
		ProgramStage: r.ProgramStage,
		Priority:     r.Priority,
		Condition:    r.Condition,
		Actions:      make([]actionExport, 0, len(r.Actions)),
	}
	for _, a := range r.Actions {
		out.Actions = append(out.Actions, actionExport{Kind: a.Kind(), Action: a})
	}
	return out
}
