package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/attendance"
	"github.com/trezcool/shule/core/class"
	"github.com/trezcool/shule/core/record"
	"github.com/trezcool/shule/storage"
	"github.com/trezcool/shule/storage/remote"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf       *core.Config
	logger     core.Logger
	out        io.Writer
	client     record.Client // opened on first use when nil
	validate   *validator.Validate
	translator ut.Translator
}

func newCommandLine(conf *core.Config, logger core.Logger, out io.Writer) *commandLine {
	validate, translator := core.NewValidator(class.InitValidators, attendance.InitValidators)
	return &commandLine{
		conf:       conf,
		logger:     logger,
		out:        out,
		validate:   validate,
		translator: translator,
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  students - list students")
	fmt.Fprintln(cli.out, "  import-students -file FILE [-sheet SHEET] - create students from a spreadsheet")
	fmt.Fprintln(cli.out, "  mark-attendance -student ID -class ID [-date YYYY-MM-DD] [-status STATUS] - mark a student's attendance")
	fmt.Fprintln(cli.out, "  summary - school overview")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	importCmd := flag.NewFlagSet("import-students", flag.ExitOnError)
	importFile := importCmd.String("file", "", "The .xlsx roster. Columns: first name, last name, grade, date of birth, email, phone, address.")
	importSheet := importCmd.String("sheet", "", "The sheet to read (defaults to the first one).")

	markCmd := flag.NewFlagSet("mark-attendance", flag.ExitOnError)
	markStudent := markCmd.Int("student", 0, "The student's ID.")
	markClass := markCmd.Int("class", 0, "The class ID.")
	markDate := markCmd.String("date", "", "The day, formatted YYYY-MM-DD (defaults to today).")
	markStatus := markCmd.String("status", attendance.StatusPresent, "present, absent or tardy.")

	switch args[1] {
	case "students":
		if err := cli.connect(); err != nil {
			return err
		}
		return cli.listStudents()
	case "import-students":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		if err := cli.connect(); err != nil {
			return err
		}
		return cli.importStudents(*importFile, *importSheet)
	case "mark-attendance":
		if err := markCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *markStudent <= 0 || *markClass <= 0 {
			markCmd.Usage()
			return errHelp
		}
		if *markDate == "" {
			*markDate = core.Today()
		}
		if err := cli.connect(); err != nil {
			return err
		}
		return cli.markAttendance(*markStudent, *markClass, *markDate, *markStatus)
	case "summary":
		if err := cli.connect(); err != nil {
			return err
		}
		return cli.summary()
	default:
		cli.printUsage()
		return errHelp
	}
}

// connect opens the configured backend, prompting for the public key when the remote
// backend has none.
func (cli *commandLine) connect() error {
	if cli.client != nil {
		return nil
	}
	var key []byte
	if cli.conf.Backend == core.BackendRemote && cli.conf.Remote.PublicKey == "" {
		fmt.Fprint(cli.out, "Enter public key:")
		var err error
		key, err = readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(key) == 0 {
			return errHelp
		}
	}

	client, err := storage.Open(cli.conf)
	if err != nil {
		return err
	}
	if rc, ok := client.(*remote.Client); ok && len(key) > 0 {
		rc.SetPublicKey(string(key))
	}
	cli.client = client
	return nil
}
