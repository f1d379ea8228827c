package scenarioconfig

// mergePartial folds overlay onto base: for scalar sections
// (credentials, server, execute, tasks), overlay's value wins when
// present, base's value otherwise. For variables, the two
// sub-mappings are merged key-by-key (overlay wins per key); shadow
// removal (dropping a Required key also present in Defined) is applied
// once, after the full chain has been folded — see finalize.
func mergePartial(base, overlay *PartialScenarioConfig) *PartialScenarioConfig {
	merged := &PartialScenarioConfig{
		Parent:      overlay.Parent,
		Credentials: base.Credentials,
		Server:      base.Server,
		Execute:     base.Execute,
		Tasks:       base.Tasks,
	}

	if overlay.Credentials != nil {
		merged.Credentials = overlay.Credentials
	}
	if overlay.Server != nil {
		merged.Server = overlay.Server
	}
	if overlay.Execute != nil {
		merged.Execute = overlay.Execute
	}
	if overlay.Tasks != nil {
		merged.Tasks = overlay.Tasks
	}

	merged.Variables = mergeVariables(base.Variables, overlay.Variables)

	return merged
}

func mergeVariables(base, overlay *VariablesConfig) *VariablesConfig {
	if base == nil && overlay == nil {
		return nil
	}

	merged := &VariablesConfig{
		Required: map[string]RequiredVariableConfig{},
		Defined:  map[string]string{},
	}

	if base != nil {
		for k, v := range base.Required {
			merged.Required[k] = v
		}
		for k, v := range base.Defined {
			merged.Defined[k] = v
		}
		merged.Special = base.Special
	}
	if overlay != nil {
		for k, v := range overlay.Required {
			merged.Required[k] = v
		}
		for k, v := range overlay.Defined {
			merged.Defined[k] = v
		}
		if overlay.Special.Timestamp != nil {
			merged.Special.Timestamp = overlay.Special.Timestamp
		}
	}

	return merged
}

// finalize drops from Required any key also present in Defined
// (Defined shadows Required) and validates that every mandatory
// section is present, producing the effective ScenarioConfig.
func finalize(merged *PartialScenarioConfig) (*ScenarioConfig, error) {
	if merged.Credentials == nil {
		return nil, &MissingSectionError{Section: "credentials"}
	}
	if merged.Server == nil {
		return nil, &MissingSectionError{Section: "server"}
	}
	if merged.Execute == nil {
		return nil, &MissingSectionError{Section: "execute"}
	}
	if merged.Tasks == nil {
		return nil, &MissingSectionError{Section: "tasks"}
	}

	variables := VariablesConfig{}
	if merged.Variables != nil {
		variables.Required = map[string]RequiredVariableConfig{}
		for k, v := range merged.Variables.Required {
			variables.Required[k] = v
		}
		variables.Defined = merged.Variables.Defined
		variables.Special = merged.Variables.Special

		for k := range variables.Defined {
			delete(variables.Required, k)
		}
	}

	return &ScenarioConfig{
		Credentials: *merged.Credentials,
		Server:      *merged.Server,
		Execute:     *merged.Execute,
		Variables:   variables,
		Tasks:       *merged.Tasks,
	}, nil
}
