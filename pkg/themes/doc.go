// Package themes finds PlantUML theme directories and their example diagrams.
//
// A theme directory is any directory, one or two levels below the scan root,
// that directly contains a file matching [DefinitionPattern]. Discovery is an
// explicit bounded-depth walk: symbolic links to directories are followed,
// and results are de-duplicated by canonical path and sorted by path.
//
// Each theme keeps its renderable diagrams in an examples/ subdirectory;
// [Examples] lists them in lexical order.
package themes
