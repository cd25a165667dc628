package quartic

// Version is the d4count release version.
const Version = "0.1.0"
