package auction

// Scores returns a per-owner scalar blending each filled roster slot's
// player value, weighted by starterWeight for starter slots and
// 1-starterWeight for bench slots. Open slots contribute nothing.
func (a *Auction) Scores(starterWeight float64) []float64 {
	scores := make([]float64, len(a.owners))
	for i, o := range a.owners {
		for s := range a.roster {
			p := o.slotPlayers[s]
			if p == -1 {
				continue
			}
			v := float64(a.players[p].Value)
			if a.roster[s].Starter {
				scores[i] += starterWeight * v
			} else {
				scores[i] += (1 - starterWeight) * v
			}
		}
	}
	return scores
}
