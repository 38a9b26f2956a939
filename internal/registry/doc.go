// Package registry groups discovered packages by package number and version
// and resolves the best installed version for a version constraint. Every
// Discover or Build call scans the installation root afresh; nothing is
// cached or shared between calls.
package registry
