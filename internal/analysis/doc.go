// Package analysis inspects recorded oscillator trajectories.
//
//   - [DominantFrequency]: peak of the power spectrum of a position series
//   - [PowerSpectrum]: magnitude spectrum of a zero-padded series
//   - [EnergySeries]: mechanical energy per snapshot
//   - [CompareToReference]: max and RMS error against a closed-form solution
//   - [PhasePortrait]: position/velocity trajectory with an ASCII renderer
//   - [Crossings]: interpolated upward zero crossings, for period estimates
//
// # Frequency
//
// For an underdamped run the dominant frequency approaches ωd/2π:
//
//	xs, _ := result.Positions()
//	f := analysis.DominantFrequency(xs, dt)
package analysis
