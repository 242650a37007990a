// Package fluidcss generates responsive CSS from viewport breakpoints.
//
// A breakpoint maps a viewport width to the value a CSS length property should
// have at that width. Given an ordered list of breakpoints, fluidcss emits a
// declaration per segment that linearly interpolates between its two ends,
// built from calc/clamp/min/max expressions and min-width media queries.
//
// # Interpolating one segment
//
//	value, err := fluidcss.Lerp(
//		fluidcss.Breakpoint{ViewportWidth: 320, ResultingValue: 16},
//		fluidcss.Breakpoint{ViewportWidth: 1280, ResultingValue: 24},
//		fluidcss.ClampBoth,
//	)
//	// clamp(16px, 13.33px + 0.83vw, 24px)
//
// # Generating a property
//
//	gen, err := fluidcss.Generate("font-size", []fluidcss.Breakpoint{
//		{ViewportWidth: 320, ResultingValue: 16},
//		{ViewportWidth: 768, ResultingValue: 20},
//		{ViewportWidth: 1280, ResultingValue: 24},
//	})
//	if err != nil {
//		var failure *fluidcss.GenerationFailure
//		if errors.As(err, &failure) {
//			fmt.Println(failure.Reason.Placeholder())
//		}
//		return
//	}
//	fmt.Println(gen.CSS())
//
// Editors that always need something to display can call Code instead, which
// returns the generated CSS or a comment placeholder naming the problem.
//
// # CLI Tool
//
// fluidcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/fluidcss/cmd/fluidcss@latest
package fluidcss
