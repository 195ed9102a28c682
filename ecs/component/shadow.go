package component

type Shadow struct {
	Cast    bool
	Receive bool
}

var ShadowComponent = NewComponent[Shadow]()
