/*
Package config loads flow documents from YAML.

A flow document bundles the workflow/step catalog (model.FlowConfig) with
simulation and layout settings. Precedence is defaults first, then the YAML
file:

	doc, err := config.NewLoader().
	    WithConfigPath("flows.yaml").
	    Load()

The loader validates the flow section structurally before returning it, so a
document that loads is safe to hand to the simulator.
*/
package config
