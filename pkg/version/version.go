package version

// VERSION is the canonical version number for the evidence-register tooling.
const VERSION = "0.1.0"
