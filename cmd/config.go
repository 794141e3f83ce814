package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/zonelearn/experiment"
	"github.com/samuelfneumann/zonelearn/goal"
)

// NewConfigCmd returns the command printing the resolved configuration
func NewConfigCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Args:  cobra.ExactArgs(0),
		Short: "Print the resolved training configuration as YAML",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindTrainingFlags(cmd.Flags(), v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ReadConfig(v)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return fmt.Errorf("config: could not encode: %w", err)
			}
			return enc.Close()
		},
	}
	addTrainingFlags(c.Flags())
	return c
}

// addTrainingFlags adds the flags overriding experiment.Config fields
func addTrainingFlags(flags *pflag.FlagSet) {
	def := experiment.DefaultConfig()

	flags.Uint64("seed", def.Seed, "Random seed")
	flags.StringArray("goal", nil, "Goal levels as z1,z2, may be repeated (default 2,3)")
	flags.Int("episodes", def.Agent.Episodes, "Number of training episodes per goal")
	flags.Float64("alpha", def.Agent.LearningRate, "Learning rate in [0, 1]")
	flags.Float64("gamma", def.Agent.Discount, "Discount factor in [0, 1]")
	flags.Float64("epsilon", def.Agent.Epsilon, "Exploration probability in [0, 1]")
	flags.Float64("goal-reward", def.Agent.GoalReward, "Reward added when the goal is reached")
	flags.Int("step-cap", def.Limits.StepCap, "Maximum steps per episode")
	flags.String("env", string(def.EnvConf.Environment), "Environment to train in (Lab or Dimmer)")
	flags.Int("sunshine", def.EnvConf.Sunshine, "Initial sunshine level of the Lab")
	flags.Float64("drift", def.EnvConf.Drift, "Probability the Lab sunshine changes after an action")
}

// bindTrainingFlags binds the flags added by addTrainingFlags to their
// configuration keys. Commands share v, so binding must happen for the
// command being run only.
func bindTrainingFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	bind := map[string]string{
		"seed":                    "seed",
		"agent.episodes":          "episodes",
		"agent.learning_rate":     "alpha",
		"agent.discount":          "gamma",
		"agent.epsilon":           "epsilon",
		"agent.goal_reward":       "goal-reward",
		"limits.step_cap":         "step-cap",
		"environment.environment": "env",
		"environment.sunshine":    "sunshine",
		"environment.drift":       "drift",
	}
	for key, flag := range bind {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("bindTrainingFlags: %v: %w", flag, err)
		}
	}
	return v.BindPFlag("goal-flags", flags.Lookup("goal"))
}

// ReadConfig resolves the experiment configuration from, in increasing
// priority, the defaults, the config file, and the command line flags
func ReadConfig(v *viper.Viper) (experiment.Config, error) {
	cfg := experiment.DefaultConfig()
	defaultGoals := cfg.Goals
	cfg.Goals = nil

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("readConfig: could not read %v: %w", file,
				err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("readConfig: could not decode: %w", err)
	}

	if flags := v.GetStringSlice("goal-flags"); len(flags) > 0 {
		cfg.Goals = cfg.Goals[:0]
		for _, f := range flags {
			g, err := goal.Parse(f)
			if err != nil {
				return cfg, fmt.Errorf("readConfig: %w", err)
			}
			cfg.Goals = append(cfg.Goals, g)
		}
	}
	if len(cfg.Goals) == 0 {
		cfg.Goals = defaultGoals
	}

	return cfg, nil
}
