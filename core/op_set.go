package core

func GetOpFromMode(mode Mode) Op {
	switch mode {
	case Minimum:
		return NewMinOp()
	case Mean:
		return NewMeanOp()
	case Maximum:
		return NewMaxOp()
	}
	panic("core: unhandled mode " + mode.String())
}

func GetOpFromName(name string) (Op, error) {
	mode, err := ParseMode(name)
	if err != nil {
		return nil, err
	}
	return GetOpFromMode(mode), nil
}
