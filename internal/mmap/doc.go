// Package mmap maps dictionary files read-only into memory.
//
//	m, err := mmap.Open("words.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	line, _ := m.Slice(0, 64)
//
// On Unix the mapping uses mmap(2) and honors madvise(2) hints. On Windows it
// uses CreateFileMapping/MapViewOfFile and Advise is a no-op.
//
// Slices returned by Bytes and Slice are only valid until Close.
package mmap
