package main_test

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var (
		cmdArgs []string
		tempDir string
		session *gexec.Session
	)

	writeFile := func(name string, content []byte) string {
		path := filepath.Join(tempDir, name)
		Expect(ioutil.WriteFile(path, content, 0644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		var err error
		tempDir, err = ioutil.TempDir("", "chunk-finder-main")
		Expect(err).NotTo(HaveOccurred())

		cmdArgs = []string{}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	JustBeforeEach(func() {
		cmd := exec.Command(cliPath, cmdArgs...)

		var err error
		session, err = gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("when given a source and a target", func() {
		BeforeEach(func() {
			cmdArgs = []string{
				writeFile("source", []byte("ab")),
				writeFile("target", []byte("xxabxxab")),
			}
		})

		It("prints every chunk", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(string(session.Out.Contents())).To(Equal("(2, 3)\n(6, 7)\n"))
		})
	})

	Context("when the sources are binary", func() {
		BeforeEach(func() {
			header := []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01}
			trailer := []byte{0xde, 0xad, 0xbe, 0xef}

			target := append([]byte{}, header...)
			target = append(target, 0xff, 0x00)
			target = append(target, trailer...)

			cmdArgs = []string{
				writeFile("header", header),
				writeFile("trailer", trailer),
				writeFile("image", target),
			}
		})

		It("prints the chunks of each source in order", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(string(session.Out.Contents())).To(Equal("(0, 5)\n(8, 11)\n"))
		})
	})

	Context("when a source overlaps itself", func() {
		BeforeEach(func() {
			cmdArgs = []string{
				writeFile("source", []byte("aa")),
				writeFile("target", []byte("aaa")),
			}
		})

		It("reports only the first occurrence", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(string(session.Out.Contents())).To(Equal("(0, 1)\n"))
		})

		Context("when given the --overlap flag", func() {
			BeforeEach(func() {
				cmdArgs = append([]string{"--overlap"}, cmdArgs...)
			})

			It("reports every occurrence", func() {
				Eventually(session).Should(gexec.Exit(0))
				Expect(string(session.Out.Contents())).To(Equal("(0, 1)\n(1, 2)\n"))
			})
		})
	})

	Context("when no chunks are found", func() {
		BeforeEach(func() {
			cmdArgs = []string{
				writeFile("source", []byte("needle")),
				writeFile("target", []byte("haystack")),
			}
		})

		It("exits with status 0 and prints nothing", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out.Contents()).To(BeEmpty())
		})
	})

	Context("when a source does not exist", func() {
		var missing string

		BeforeEach(func() {
			missing = filepath.Join(tempDir, "missing")
			cmdArgs = []string{
				missing,
				writeFile("target", []byte("xxabxxab")),
			}
		})

		It("names the path and exits with status 1", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say(`\[FAILED\].*could not open file: ` + missing))
			Expect(session.Out.Contents()).To(BeEmpty())
		})
	})

	Context("when the target does not exist", func() {
		var missing string

		BeforeEach(func() {
			missing = filepath.Join(tempDir, "missing")
			cmdArgs = []string{
				writeFile("source", []byte("ab")),
				missing,
			}
		})

		It("names the path and exits with status 1", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("could not open file: " + missing))
		})
	})

	Context("when only one path is given", func() {
		BeforeEach(func() {
			cmdArgs = []string{writeFile("source", []byte("ab"))}
		})

		It("prints usage and exits with status 1", func() {
			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("at least one source and a target are required"))
			Expect(session.Err).To(gbytes.Say("Usage"))
		})
	})

	Context("when given --debug", func() {
		BeforeEach(func() {
			cmdArgs = []string{
				"--debug",
				writeFile("source", []byte("ab")),
				writeFile("target", []byte("ab")),
			}
		})

		It("logs to stderr and keeps stdout for chunks", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Err).To(gbytes.Say("chunk-finder.run.find.chunk-found"))
			Expect(string(session.Out.Contents())).To(Equal("(0, 1)\n"))
		})
	})

	Context("when given --version", func() {
		BeforeEach(func() {
			cmdArgs = []string{"--version"}
		})

		It("prints the version", func() {
			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("dev"))
		})
	})
})
