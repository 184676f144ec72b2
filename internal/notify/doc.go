// Package notify runs the steps that follow a completed scaffold: an
// optional git bootstrap and the summary printed for the operator.
//
// Nothing here can fail a scaffold. TryInitRepo logs and swallows every
// error; PrintSummary only writes to the output package.
package notify
