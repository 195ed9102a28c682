package component

// SceneMember marks a node that has been added to the scene and is drawn.
type SceneMember struct{}

var SceneMemberComponent = NewComponent[SceneMember]()
