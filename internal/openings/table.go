package openings

// defaultTable is the built-in opening database. Entries go from generic to
// specific; the classifier prefers the longest matching line, so a game is
// tagged with the most specific entry whose moves it follows.
var defaultTable = []Entry{
	// 1. e4
	{"B00", "King's Pawn Opening", ParseMoves("e4")},
	{"B00", "Nimzowitsch Defense", ParseMoves("e4 Nc6")},
	{"B01", "Scandinavian Defense", ParseMoves("e4 d5")},
	{"B01", "Scandinavian Defense: Main Line", ParseMoves("e4 d5 exd5 Qxd5")},
	{"B02", "Alekhine Defense", ParseMoves("e4 Nf6")},
	{"B06", "Modern Defense", ParseMoves("e4 g6")},
	{"B07", "Pirc Defense", ParseMoves("e4 d6 d4 Nf6")},
	{"B10", "Caro-Kann Defense", ParseMoves("e4 c6")},
	{"B12", "Caro-Kann Defense: Advance Variation", ParseMoves("e4 c6 d4 d5 e5")},
	{"B13", "Caro-Kann Defense: Exchange Variation", ParseMoves("e4 c6 d4 d5 exd5")},
	{"B15", "Caro-Kann Defense: Main Line", ParseMoves("e4 c6 d4 d5 Nc3")},
	{"B20", "Sicilian Defense", ParseMoves("e4 c5")},
	{"B21", "Sicilian Defense: Smith-Morra Gambit", ParseMoves("e4 c5 d4")},
	{"B22", "Sicilian Defense: Alapin Variation", ParseMoves("e4 c5 c3")},
	{"B23", "Sicilian Defense: Closed", ParseMoves("e4 c5 Nc3")},
	{"B27", "Sicilian Defense: Open", ParseMoves("e4 c5 Nf3")},
	{"B30", "Sicilian Defense: Old Sicilian", ParseMoves("e4 c5 Nf3 Nc6")},
	{"B40", "Sicilian Defense: French Variation", ParseMoves("e4 c5 Nf3 e6")},
	{"B50", "Sicilian Defense: Modern Variations", ParseMoves("e4 c5 Nf3 d6")},
	{"B54", "Sicilian Defense: Open, Najdorf Structure", ParseMoves("e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6")},
	{"B90", "Sicilian Defense: Najdorf Variation", ParseMoves("e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 a6")},
	{"B70", "Sicilian Defense: Dragon Variation", ParseMoves("e4 c5 Nf3 d6 d4 cxd4 Nxd4 Nf6 Nc3 g6")},
	{"B33", "Sicilian Defense: Sveshnikov Variation", ParseMoves("e4 c5 Nf3 Nc6 d4 cxd4 Nxd4 Nf6 Nc3 e5")},
	{"C00", "French Defense", ParseMoves("e4 e6")},
	{"C02", "French Defense: Advance Variation", ParseMoves("e4 e6 d4 d5 e5")},
	{"C03", "French Defense: Tarrasch Variation", ParseMoves("e4 e6 d4 d5 Nd2")},
	{"C10", "French Defense: Paulsen Variation", ParseMoves("e4 e6 d4 d5 Nc3")},
	{"C11", "French Defense: Classical Variation", ParseMoves("e4 e6 d4 d5 Nc3 Nf6")},
	{"C15", "French Defense: Winawer Variation", ParseMoves("e4 e6 d4 d5 Nc3 Bb4")},
	{"C20", "King's Pawn Game", ParseMoves("e4 e5")},
	{"C21", "Center Game", ParseMoves("e4 e5 d4")},
	{"C23", "Bishop's Opening", ParseMoves("e4 e5 Bc4")},
	{"C25", "Vienna Game", ParseMoves("e4 e5 Nc3")},
	{"C30", "King's Gambit", ParseMoves("e4 e5 f4")},
	{"C40", "King's Knight Opening", ParseMoves("e4 e5 Nf3")},
	{"C41", "Philidor Defense", ParseMoves("e4 e5 Nf3 d6")},
	{"C42", "Petrov's Defense", ParseMoves("e4 e5 Nf3 Nf6")},
	{"C44", "King's Knight Opening: Normal Variation", ParseMoves("e4 e5 Nf3 Nc6")},
	{"C45", "Scotch Game", ParseMoves("e4 e5 Nf3 Nc6 d4")},
	{"C46", "Three Knights Opening", ParseMoves("e4 e5 Nf3 Nc6 Nc3")},
	{"C47", "Four Knights Game", ParseMoves("e4 e5 Nf3 Nc6 Nc3 Nf6")},
	{"C50", "Italian Game", ParseMoves("e4 e5 Nf3 Nc6 Bc4")},
	{"C50", "Italian Game: Giuoco Piano", ParseMoves("e4 e5 Nf3 Nc6 Bc4 Bc5")},
	{"C55", "Italian Game: Two Knights Defense", ParseMoves("e4 e5 Nf3 Nc6 Bc4 Nf6")},
	{"C60", "Ruy Lopez", ParseMoves("e4 e5 Nf3 Nc6 Bb5")},
	{"C65", "Ruy Lopez: Berlin Defense", ParseMoves("e4 e5 Nf3 Nc6 Bb5 Nf6")},
	{"C68", "Ruy Lopez: Exchange Variation", ParseMoves("e4 e5 Nf3 Nc6 Bb5 a6 Bxc6")},
	{"C70", "Ruy Lopez: Morphy Defense", ParseMoves("e4 e5 Nf3 Nc6 Bb5 a6")},
	{"C84", "Ruy Lopez: Closed", ParseMoves("e4 e5 Nf3 Nc6 Bb5 a6 Ba4 Nf6 O-O Be7")},

	// 1. d4
	{"A40", "Queen's Pawn Opening", ParseMoves("d4")},
	{"A40", "Englund Gambit", ParseMoves("d4 e5")},
	{"A41", "Old Indian Defense", ParseMoves("d4 d6")},
	{"A43", "Benoni Defense", ParseMoves("d4 c5")},
	{"A45", "Indian Game", ParseMoves("d4 Nf6")},
	{"A45", "Trompowsky Attack", ParseMoves("d4 Nf6 Bg5")},
	{"A46", "Indian Game: Knights Variation", ParseMoves("d4 Nf6 Nf3")},
	{"A56", "Benoni Defense: Czech Variation", ParseMoves("d4 Nf6 c4 c5 d5 e5")},
	{"A57", "Benko Gambit", ParseMoves("d4 Nf6 c4 c5 d5 b5")},
	{"A80", "Dutch Defense", ParseMoves("d4 f5")},
	{"D00", "Queen's Pawn Game", ParseMoves("d4 d5")},
	{"D00", "Blackmar-Diemer Gambit", ParseMoves("d4 d5 e4")},
	{"D01", "Richter-Veresov Attack", ParseMoves("d4 d5 Nc3 Nf6 Bg5")},
	{"D02", "London System", ParseMoves("d4 d5 Nf3 Nf6 Bf4")},
	{"D02", "Queen's Pawn Game: Symmetrical Variation", ParseMoves("d4 d5 Nf3")},
	{"D06", "Queen's Gambit", ParseMoves("d4 d5 c4")},
	{"D07", "Queen's Gambit Declined: Chigorin Defense", ParseMoves("d4 d5 c4 Nc6")},
	{"D10", "Slav Defense", ParseMoves("d4 d5 c4 c6")},
	{"D20", "Queen's Gambit Accepted", ParseMoves("d4 d5 c4 dxc4")},
	{"D30", "Queen's Gambit Declined", ParseMoves("d4 d5 c4 e6")},
	{"D35", "Queen's Gambit Declined: Exchange Variation", ParseMoves("d4 d5 c4 e6 cxd5 exd5")},
	{"D43", "Semi-Slav Defense", ParseMoves("d4 d5 c4 e6 Nc3 Nf6 Nf3 c6")},
	{"D80", "Gruenfeld Defense", ParseMoves("d4 Nf6 c4 g6 Nc3 d5")},
	{"E00", "Indian Game: East Indian Defense", ParseMoves("d4 Nf6 c4 e6")},
	{"E11", "Bogo-Indian Defense", ParseMoves("d4 Nf6 c4 e6 Nf3 Bb4+")},
	{"E12", "Queen's Indian Defense", ParseMoves("d4 Nf6 c4 e6 Nf3 b6")},
	{"E20", "Nimzo-Indian Defense", ParseMoves("d4 Nf6 c4 e6 Nc3 Bb4")},
	{"E60", "King's Indian Defense", ParseMoves("d4 Nf6 c4 g6")},
	{"E70", "King's Indian Defense: Normal Variation", ParseMoves("d4 Nf6 c4 g6 Nc3 Bg7 e4 d6")},

	// 1. c4
	{"A10", "English Opening", ParseMoves("c4")},
	{"A20", "English Opening: King's English", ParseMoves("c4 e5")},
	{"A30", "English Opening: Symmetrical Variation", ParseMoves("c4 c5")},
	{"A15", "English Opening: Anglo-Indian Defense", ParseMoves("c4 Nf6")},
	{"A13", "English Opening: Agincourt Defense", ParseMoves("c4 e6")},

	// 1. Nf3 and the rest
	{"A04", "Zukertort Opening", ParseMoves("Nf3")},
	{"A05", "Zukertort Opening: Anglo-Indian", ParseMoves("Nf3 Nf6")},
	{"A07", "King's Indian Attack", ParseMoves("Nf3 d5 g3")},
	{"A09", "Reti Opening", ParseMoves("Nf3 d5 c4")},
	{"A00", "Hungarian Opening", ParseMoves("g3")},
	{"A00", "Nimzo-Larsen Attack", ParseMoves("b3")},
	{"A00", "Bird Opening", ParseMoves("f4")},
	{"A00", "Van Geet Opening", ParseMoves("Nc3")},
	{"A00", "Polish Opening", ParseMoves("b4")},
	{"A00", "Grob Opening", ParseMoves("g4")},
}
