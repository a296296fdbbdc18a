package rules

// defaultColors are the names presentation layers know how to draw. Snakes
// take them in creation order and wrap around.
var defaultColors = []string{
	"green",
	"blue",
	"magenta",
	"yellow",
	"cyan",
	"red",
	"white",
}

var palette = defaultColors

func colorFor(index int) string {
	return palette[index%len(palette)]
}
