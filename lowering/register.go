package lowering

import "github.com/nwqec-go/transpiler/pass"

// init wires the four lowering passes into pass.defaultRegistry.
// lowering imports pass (for pass.Config/pass.Pass/pass.Register); pass
// never imports lowering, so there is no cycle.
func init() {
	pass.Register(pass.Decompose, func(cfg pass.Config) (pass.Pass, bool) {
		return NewDecomposePass(cfg), true
	})
	pass.Register(pass.RemoveTrivialRz, func(cfg pass.Config) (pass.Pass, bool) {
		return NewRemoveTrivialRzPass(), true
	})
	pass.Register(pass.GateFusion, func(cfg pass.Config) (pass.Pass, bool) {
		return NewGateFusionPass(), true
	})
	pass.Register(pass.RemovePauli, func(cfg pass.Config) (pass.Pass, bool) {
		return NewRemovePauliPass(), true
	})
}
