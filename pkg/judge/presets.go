package judge

// Window values follow the community timing spreadsheet by Foxfire and
// poco0317. Since the J4 boo window lock every judge from J4 up shares the
// 180ms bad window.
//
// J1 through J9 are shared and must be treated as read-only. Use ByName or
// Presets for a copy that can be modified.

// J1 was removed from Etterna in 0.69.0.
var J1 = &Judge{
	Name:        "J1",
	Marvelous:   0.03375,
	Perfect:     0.0675,
	Great:       0.135,
	Good:        0.2025,
	Bad:         0.27,
	Hold:        0.375,
	Roll:        0.75,
	Mine:        0.075,
	TimingScale: 1.50,
}

// J2 was removed from Etterna in 0.69.0.
var J2 = &Judge{
	Name:        "J2",
	Marvelous:   0.029925,
	Perfect:     0.05985,
	Great:       0.1197,
	Good:        0.17955,
	Bad:         0.2394,
	Hold:        0.3325,
	Roll:        0.665,
	Mine:        0.075,
	TimingScale: 1.33,
}

// J3 was removed from Etterna in 0.69.0.
var J3 = &Judge{
	Name:        "J3",
	Marvelous:   0.0261,
	Perfect:     0.0522,
	Great:       0.1044,
	Good:        0.1566,
	Bad:         0.2088,
	Hold:        0.29,
	Roll:        0.58,
	Mine:        0.075,
	TimingScale: 1.16,
}

// J4 is the default judge for official scoring.
var J4 = &Judge{
	Name:        "J4",
	Marvelous:   0.0225,
	Perfect:     0.045,
	Great:       0.09,
	Good:        0.135,
	Bad:         0.18,
	Hold:        0.25,
	Roll:        0.5,
	Mine:        0.075,
	TimingScale: 1.00,
}

// J5 is used by some players as their go-to judge.
var J5 = &Judge{
	Name:        "J5",
	Marvelous:   0.0189,
	Perfect:     0.0378,
	Great:       0.0756,
	Good:        0.1134,
	Bad:         0.18, // 151.2ms before the boo window lock
	Hold:        0.21,
	Roll:        0.42,
	Mine:        0.075,
	TimingScale: 0.84,
}

// J6 is sometimes used for accuracy training.
var J6 = &Judge{
	Name:        "J6",
	Marvelous:   0.01485,
	Perfect:     0.0297,
	Great:       0.0594,
	Good:        0.0891,
	Bad:         0.18, // 118.8ms before the boo window lock
	Hold:        0.165,
	Roll:        0.33,
	Mine:        0.075,
	TimingScale: 0.66,
}

// J7 halves the J4 windows. Common for accuracy training.
var J7 = &Judge{
	Name:        "J7",
	Marvelous:   0.01125,
	Perfect:     0.0225,
	Great:       0.045,
	Good:        0.0675,
	Bad:         0.18, // 90ms before the boo window lock
	Hold:        0.125,
	Roll:        0.25,
	Mine:        0.075,
	TimingScale: 0.50,
}

// J8 halves the J6 windows.
var J8 = &Judge{
	Name:        "J8",
	Marvelous:   0.007425,
	Perfect:     0.01485,
	Great:       0.0297,
	Good:        0.04455,
	Bad:         0.18, // 59.4ms before the boo window lock
	Hold:        0.0825,
	Roll:        0.25, // 165ms before the J7 roll lock
	Mine:        0.075,
	TimingScale: 0.33,
}

// J9, also called Justice, was originally added to the game as a joke.
var J9 = &Judge{
	Name:        "J9",
	Marvelous:   0.0045,
	Perfect:     0.009,
	Great:       0.018,
	Good:        0.027,
	Bad:         0.18, // 36ms before the boo window lock
	Hold:        0.05,
	Roll:        0.25, // 100ms before the J7 roll lock
	Mine:        0.075,
	TimingScale: 0.20,
}
