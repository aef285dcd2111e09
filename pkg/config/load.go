package config

// Load builds Options from the built-in defaults, the YAML file at path
// (skipped when path is empty) and the environment, in that order.
// Command-line flags are applied on top by the caller.
func Load(path string) (Options, error) {
	opts := Defaults()

	if path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return Options{}, err
		}
		file.Apply(&opts)
	}

	env, err := FromEnv()
	if err != nil {
		return Options{}, err
	}
	env.Apply(&opts)

	return opts, nil
}
