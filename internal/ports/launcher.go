package ports

// Launcher asks the operating system to start a program
type Launcher interface {
	// Launch starts path with args and returns without waiting for it to exit
	Launch(path string, args []string) error
}
