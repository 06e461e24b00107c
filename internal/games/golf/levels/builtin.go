package levels

// Builtin returns the courses compiled into the binary. They double as
// the default campaign when no course directory is supplied.
func Builtin() []Level {
	return []Level{
		{
			ID:   "dunes",
			Name: "Dune Valley",
			Par:  3,
			TeeX: 4, TeeY: 12,
			Width: 60, Height: 22,
			Rows: []string{
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"..............SSSS..........................................",
				".............SSSSSS...................SSSS..................",
				"............SSSSSSSS.................SSSSSS.........O.......",
				"DDDDDDDDDDDSSSSSSSSSSDDDDDDDDDDDDDDSSSSSSSSSSDDDDDDDDDDDDDDD",
				"DDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDD",
				"DDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDD",
				"############################################################",
				"############################################################",
				"############################################################",
			},
		},
		{
			ID:   "lakeside",
			Name: "Lakeside",
			Par:  4,
			TeeX: 3, TeeY: 10,
			Width: 60, Height: 22,
			Rows: []string{
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"..........................................................O.",
				"DDDDDDDDD............................DDDDDDDDDDDDDDDDDDDDDDD",
				"DDDDDDDDDD..........................DDDDDDDDDDDDDDDDDDDDDDDD",
				"DDDDDDDDDDDWWWWWWWWWWWWWWWWWWWWWWWWDDDDDDDDDDDDDDDDDDDDDDDDD",
				"DDDDDDDDDDDWWWWWWWWWWWWWWWWWWWWWWWWDDDDDDDDDDDDDDDDDDDDDDDDD",
				"DDDDDDDDDDDDWWWWWWWWWWWWWWWWWWWWWWDDDDDDDDDDDDDDDDDDDDDDDDDD",
				"############################################################",
				"############################################################",
				"############################################################",
				"############################################################",
			},
		},
		{
			ID:   "glacier",
			Name: "Glacier Run",
			Par:  5,
			TeeX: 4, TeeY: 8,
			Width: 60, Height: 22,
			Rows: []string{
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"............................................................",
				"...................IIIIII...................................",
				"...................IIIIII...................................",
				"..................IIIIIIII......FF..........................",
				"DDDDDDDDDDDDDDDDDIIIIIIIIIIDDDDDDDDDD.............O.........",
				"DDDDDDDDDDDDDDDDDIIIIIIIIIIDDDDDDDDDDDSSSSSSSSSDDDDDDDDDDDDD",
				"DDDDDDDDDDDDDDDDDDIIIIIIIIDDDDDDDDDDDDSSSSSSSSSDDDDDDDDDDDDD",
				"DDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDD",
				"DDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDDD",
				"############################################################",
				"############################################################",
				"############################################################",
				"############################################################",
			},
		},
	}
}
