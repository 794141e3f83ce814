package cmd

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samuelfneumann/zonelearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/zonelearn/experiment"
	"github.com/samuelfneumann/zonelearn/experiment/tracker"
	ts "github.com/samuelfneumann/zonelearn/timestep"
	"github.com/samuelfneumann/zonelearn/utils/progressbar"
)

// progressWidth is the width of the training progress bar
const progressWidth int = 40

// NewTrainCmd returns the command training one table per goal
func NewTrainCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "train",
		Args:  cobra.ExactArgs(0),
		Short: "Train a Q-table for each goal and print it",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindTrainingFlags(cmd.Flags(), v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ReadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(v, cmd.ErrOrStderr())

			outcome := tracker.NewOutcome()
			trackers := []tracker.Tracker{outcome}
			if file, _ := cmd.Flags().GetString("returns-file"); file != "" {
				trackers = append(trackers, tracker.NewReturn(file))
			}
			if file, _ := cmd.Flags().GetString("lengths-file"); file != "" {
				trackers = append(trackers, tracker.NewEpisodeLength(file))
			}
			if show, _ := cmd.Flags().GetBool("progress"); show {
				bar := progressbar.NewManualProgressBar(cmd.ErrOrStderr(),
					progressWidth, cfg.Agent.Episodes*len(cfg.Goals))
				trackers = append(trackers, &progress{bar})
			}

			exp, err := experiment.New(cfg, logger, trackers...)
			if err != nil {
				return err
			}
			runErr := exp.Run()
			if err := exp.Save(); err != nil {
				logger.WithError(err).Error("Could not save tracked data")
			}
			if runErr != nil {
				return runErr
			}

			logger.WithFields(log.Fields{
				"episodes": outcome.Episodes(),
				"reached":  outcome.Count(ts.TerminalStateReached),
				"timeout":  outcome.Count(ts.Timeout),
				"deadEnd":  outcome.Count(ts.NoActions),
			}).Info("Training finished")

			if show, _ := cmd.Flags().GetBool("print"); !show {
				return nil
			}
			return printTables(cmd.OutOrStdout(), exp.Agent())
		},
	}
	addTrainingFlags(c.Flags())
	c.Flags().Bool("print", true, "Print the learned tables")
	c.Flags().Bool("progress", false, "Show a progress bar")
	c.Flags().String("returns-file", "", "Save episodic returns to this file")
	c.Flags().String("lengths-file", "", "Save episode lengths to this file")
	return c
}

// printTables writes every learned table of agent to out
func printTables(out io.Writer, agent *qlearning.QLearning) error {
	for _, g := range agent.Goals() {
		fmt.Fprintf(out, "Goal %v\n", g)
		if err := agent.PrintTable(out, g); err != nil {
			return err
		}
	}
	return nil
}

// progress advances a progress bar at the end of every episode
type progress struct {
	bar *progressbar.ManualProgressBar
}

func (p *progress) Track(t ts.TimeStep) {
	if t.Last() {
		p.bar.Increment()
		p.bar.Display()
	}
}

func (p *progress) Save() error {
	p.bar.Close()
	return nil
}
