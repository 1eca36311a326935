package config

// SelectorLogging returns the logging settings for marcador-menu. The
// selector's command line belongs to rofi's dmenu protocol, so only the
// configuration file and environment are consulted.
func SelectorLogging(environ []string) (Logging, error) {
	env := parseEnv(environ)
	path, explicit := configFilePath(nil, env)
	file, err := readFile(path, explicit)
	if err != nil {
		return Logging{}, err
	}
	return Logging{
		FilePath: expandPath(envOrDefault(env, envLogFile, file.LogFile), env),
		Trace:    envOrBool(env, envTrace, boolOr(file.Trace, false)),
	}, nil
}
