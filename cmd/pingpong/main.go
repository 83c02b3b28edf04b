package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pingpongcup/tournament/core"
	"github.com/pingpongcup/tournament/tabletennis"
	"github.com/urfave/cli/v2"
)

const (
	groupsFlag  = "groups"
	advanceFlag = "advance"
	bestOfFlag  = "best-of"
)

func main() {
	var groupCount, advanceCount, bestOf int
	app := &cli.App{
		Name:      "pingpong",
		Usage:     "Run a table tennis tournament with a group stage and a knockout bracket",
		ArgsUsage: "[player names in seeding order]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        groupsFlag,
				Aliases:     []string{"g"},
				Usage:       "Number of groups in the group stage",
				Value:       4,
				Destination: &groupCount,
			},
			&cli.IntFlag{
				Name:        advanceFlag,
				Aliases:     []string{"a"},
				Usage:       "Number of players advancing from each group",
				Value:       2,
				Destination: &advanceCount,
			},
			&cli.IntFlag{
				Name:        bestOfFlag,
				Usage:       "Maximum sets per match",
				Value:       3,
				Destination: &bestOf,
			},
		},
		Action: func(cCtx *cli.Context) error {
			names := cCtx.Args().Slice()
			if len(names) == 0 {
				cli.ShowAppHelp(cCtx)
				return fmt.Errorf("the player names are required")
			}
			settings, err := tabletennis.NewScoreSettings(11, bestOf/2+1)
			if err != nil {
				return err
			}
			return run(names, groupCount, advanceCount, settings)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(names []string, groupCount, advanceCount int, settings tabletennis.ScoreSettings) error {
	tournament, err := core.NewTournament(names, groupCount, advanceCount)
	if err != nil {
		return fmt.Errorf("tournament setup: %w", err)
	}

	for _, group := range tournament.Groups {
		fmt.Printf("\nGroup %d\n", group.Id+1)
		for _, p := range group.Players {
			fmt.Printf("  %v\n", p)
		}

		for _, match := range group.Matches {
			recordGroupMatch(tournament, group.Id, match, settings)
		}

		printStandings(tournament, group.Id)
	}

	bracket, err := tournament.BuildBracket()
	if err != nil {
		return err
	}

	for _, round := range bracket.Rounds {
		fmt.Printf("\n%s\n", roundName(len(round)))
		for _, node := range round {
			if node.HasBye() {
				winner, _ := node.Winner()
				fmt.Printf("%s receives a bye\n", winner.Name)
				continue
			}
			recordBracketMatch(tournament, node, settings)
		}
	}

	champion, _ := tournament.Champion()
	fmt.Printf("\nChampion: %s\n", champion.Name)

	return nil
}

// Prompts until the entered result is accepted by the
// tournament. A rejected result mutates nothing so retrying is
// always safe.
func recordGroupMatch(tournament *core.Tournament, groupId int, match *core.Match, settings tabletennis.ScoreSettings) {
	for {
		score, winner := promptResult(match.Player1, match.Player2, settings)
		err := tournament.RecordGroupResult(groupId, match.Id(), winner, score)
		if err == nil {
			return
		}
		fmt.Fprintf(os.Stderr, "result rejected: %v\n", err)
	}
}

func recordBracketMatch(tournament *core.Tournament, node *core.BracketNode, settings tabletennis.ScoreSettings) {
	player1, player2, ok := node.Players()
	if !ok {
		return
	}
	for {
		score, winner := promptResult(player1, player2, settings)
		err := tournament.RecordBracketResult(node.Id(), winner, score)
		if err == nil {
			return
		}
		fmt.Fprintf(os.Stderr, "result rejected: %v\n", err)
	}
}

func promptResult(player1, player2 core.Player, settings tabletennis.ScoreSettings) (core.Score, core.Player) {
	for {
		line := prompt(fmt.Sprintf(
			"Enter result for %s vs %s (e.g. 11-7,7-11,11-9): ",
			player1.Name, player2.Name,
		))
		score, err := parseScore(line, settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid score: %v\n", err)
			continue
		}

		winnerIndex, err := score.GetWinner()
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid score: %v\n", err)
			continue
		}
		winner := player1
		if winnerIndex == 1 {
			winner = player2
		}

		return score, winner
	}
}

func printStandings(tournament *core.Tournament, groupId int) {
	standings, err := tournament.Standings(groupId)
	if err != nil {
		return
	}

	fmt.Println("Standings:")
	for i, s := range standings {
		fmt.Printf(
			"%d. %s - %d wins, %d losses, sets %d:%d\n",
			i+1, s.Player.Name, s.Wins, s.Losses, s.SetWins, s.SetLosses,
		)
	}
}

func roundName(numMatches int) string {
	switch numMatches {
	case 1:
		return "Final"
	case 2:
		return "Semi-finals"
	default:
		return fmt.Sprintf("Round of %d", numMatches*2)
	}
}
