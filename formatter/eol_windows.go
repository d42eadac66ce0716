package formatter

const eol = "\r\n"
