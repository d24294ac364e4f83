package players

import "github.com/chairbender/gym-fantasy-football-auction/auction"

// Sample returns a built-in dataset sized for the registered environments,
// including a six-owner full-roster draft, with values normalized to the
// reference budget. Useful for tests and for running the simulator without
// a cheatsheet file.
func Sample() []auction.Player {
	mk := func(name string, pos auction.Position, value int) auction.Player {
		return auction.Player{Name: name, Pos: pos, Value: value}
	}
	return []auction.Player{
		mk("C. Hollis", auction.QB, 42),
		mk("D. Marsh", auction.QB, 31),
		mk("T. Okafor", auction.QB, 24),
		mk("J. Reyes", auction.QB, 16),
		mk("B. Lindqvist", auction.QB, 9),
		mk("M. Carver", auction.QB, 4),
		mk("A. Whitfield", auction.QB, 2),
		mk("E. Tanaka", auction.QB, 1),

		mk("R. Santana", auction.RB, 61),
		mk("K. Boateng", auction.RB, 55),
		mk("L. Draper", auction.RB, 47),
		mk("E. Moreau", auction.RB, 38),
		mk("S. Pritchard", auction.RB, 29),
		mk("N. Kowalski", auction.RB, 21),
		mk("G. Ferraro", auction.RB, 14),
		mk("O. Blackwood", auction.RB, 10),
		mk("H. Stenberg", auction.RB, 8),
		mk("P. Delacroix", auction.RB, 6),
		mk("J. Okonkwo", auction.RB, 5),
		mk("V. Marchetti", auction.RB, 4),
		mk("A. Sorensen", auction.RB, 3),
		mk("D. Quiroga", auction.RB, 2),
		mk("F. Beaumont", auction.RB, 2),
		mk("C. Ashworth", auction.RB, 1),
		mk("B. Morelli", auction.RB, 1),
		mk("T. Vance", auction.RB, 1),
		mk("K. Eriksen", auction.RB, 1),

		mk("V. Osei", auction.WR, 58),
		mk("F. Harlan", auction.WR, 52),
		mk("I. Castellanos", auction.WR, 44),
		mk("W. Nakamura", auction.WR, 35),
		mk("Z. Whitaker", auction.WR, 27),
		mk("Q. Abernathy", auction.WR, 19),
		mk("U. Vanterpool", auction.WR, 12),
		mk("Y. Mbeki", auction.WR, 9),
		mk("X. Calloway", auction.WR, 7),
		mk("J. Thackeray", auction.WR, 5),
		mk("L. Duvalier", auction.WR, 4),
		mk("R. Kirkland", auction.WR, 3),
		mk("S. Antonov", auction.WR, 2),
		mk("G. Palacios", auction.WR, 2),
		mk("N. Werner", auction.WR, 1),
		mk("M. Halloran", auction.WR, 1),
		mk("O. Devereux", auction.WR, 1),
		mk("E. Strand", auction.WR, 1),
		mk("P. Guzman", auction.WR, 1),

		mk("D. Ambrose", auction.TE, 33),
		mk("C. Veldhuis", auction.TE, 22),
		mk("T. Ngata", auction.TE, 13),
		mk("R. Falk", auction.TE, 6),
		mk("M. Iverson", auction.TE, 3),
		mk("W. Castellan", auction.TE, 2),
		mk("H. Okamura", auction.TE, 1),
		mk("A. Bergstrom", auction.TE, 1),

		mk("A. Corrigan", auction.K, 5),
		mk("S. Brandt", auction.K, 3),
		mk("L. Mizuno", auction.K, 2),
		mk("K. Renner", auction.K, 1),
		mk("J. Farrow", auction.K, 1),
		mk("C. Almeida", auction.K, 1),
		mk("D. Sokol", auction.K, 1),

		mk("Steelhawks", auction.DST, 6),
		mk("Monarchs", auction.DST, 4),
		mk("Ironclads", auction.DST, 2),
		mk("Wardens", auction.DST, 1),
		mk("Breakers", auction.DST, 1),
		mk("Stormbirds", auction.DST, 1),
		mk("Gravediggers", auction.DST, 1),
	}
}
