package canvaslab

// Template populates a Master procedurally.
//
// Assigning a template with Collection.SetTemplate or Group.SetTemplate
// stores it, points its master back at the collection, runs Init and then
// binds every created shape to the collection's canvas.
type Template interface {
	// Point returns the origin the template places shapes around.
	Point() Point

	// Master returns the collection or group being populated. It is a
	// back reference; the template does not own its master.
	Master() Master

	SetMaster(m Master)

	// Init synthesizes shapes and pushes them into the master.
	Init()
}

// Master is a collection or group a Template can populate. It is
// implemented only by the collections of this package and Group, so a
// type switch over them is exhaustive.
type Master interface {
	// EndPoint returns the point of the last shape added, which templates
	// chain new shapes from.
	EndPoint() (Point, bool)

	// Surface returns the identifier of the bound canvas.
	Surface() string

	isMaster()
}
