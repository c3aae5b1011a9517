package room

import (
	"time"

	"github.com/sirupsen/logrus"
)

// The end of a round is revealed to the table as a timed sequence:
// final hands, then the outcome, then either the next deal or the winner.
// One sequence runs per room at a time; player actions are rejected while it
// is in flight. Each step is scheduled back onto the run loop, so a room
// torn down mid-sequence simply never runs the remaining steps.

// beginResolution starts the sequence after the round's final turn
// Must only be called from the run loop
func (r *Room) beginResolution() {
	r.resolving = true

	// let the table see the final hands before the reveal
	r.broadcastGameState(keyGameStateUpdate)

	go r.runResolution()
}

func (r *Room) runResolution() {
	delay := r.registry.resolutionDelay

	time.Sleep(delay)
	r.execute(func() {
		if r.game == nil {
			return
		}

		result := r.game.DetermineOutcome()
		logrus.WithFields(logrus.Fields{
			"room":    r.code,
			"outcome": result.Type,
		}).Debug("round resolved")

		r.broadcast(&Response{
			Key:  keyRoundOutcome,
			Data: result,
		})
	})

	time.Sleep(delay)
	r.execute(func() {
		if r.game == nil {
			return
		}

		if r.game.IsGameOver() {
			r.finishGame()
			return
		}

		r.nextRound()
	})
}

// nextRound clears the table and deals again
// Must only be called from the run loop
func (r *Room) nextRound() {
	r.game.CleanUp()
	if err := r.game.StartRound(); err != nil {
		r.abortGame(err)
		return
	}

	r.resolving = false
	r.broadcastGameState(keyNewRoundStarted)
}

// finishGame announces the winner and, after a final pause, reopens the lobby
// Must only be called from the run loop
func (r *Room) finishGame() {
	var winnerName string
	winner, err := r.game.DetermineWinner()
	if err != nil {
		// a quad can wipe out every remaining player
		logrus.WithField("room", r.code).Info("game ended with no survivors")
	} else {
		winnerName = winner.Name
	}

	r.broadcast(&Response{
		Key:  keyGameOver,
		Data: &gameOverState{WinnerName: winnerName},
	})

	go func() {
		time.Sleep(r.registry.resolutionDelay)
		r.execute(func() {
			r.game = nil
			r.resolving = false
			r.phase = PhaseLobby
			r.broadcastLobby()
		})
	}()
}
