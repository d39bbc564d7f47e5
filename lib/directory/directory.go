// Package directory maintains the workspace member directory used to pick
// share targets, backed by a local file cache so repeated sends do not
// relist the whole workspace.
package directory

// Entry is one workspace member usable as a share target.
type Entry struct {
	ID   string `json:"id"`
	Team string `json:"team"`
	Name string `json:"name"`
}

// Directory is the list of workspace members, in the order the remote
// listing returned them.
type Directory []Entry

// ByName indexes the directory by display name. Display names are not
// unique in a workspace; on collision the later entry wins.
func (d Directory) ByName() map[string]Entry {
	byName := make(map[string]Entry, len(d))
	for _, e := range d {
		byName[e.Name] = e
	}
	return byName
}
